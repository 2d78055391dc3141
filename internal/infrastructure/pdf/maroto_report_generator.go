// Package pdf implementa el Reporte Completo de Inventario como documento
// multisección paginado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Nombre del negocio + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales, valor del inventario, stock bajo          │
//	│  TABLA: inventario de productos                              │
//	│  TABLA: productos con stock bajo                             │
//	│  TABLA: transacciones recientes (20, fecha descendente)      │
//	│  TABLA: categorías y marcas con conteo de productos          │
//	│  TABLA: directorio de proveedores                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/elparadero/inventario-api/internal/application/dataset"
	"github.com/elparadero/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorAlert   = &props.Color{Red: 239, Green: 68, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa dataset.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	businessName string
	printer      *message.Printer
}

// NewMarotoReportGenerator construye el generador. El nombre del negocio
// encabeza el documento y aparece en el pie de cada página.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{
		businessName: businessName,
		printer:      message.NewPrinter(language.Spanish),
	}
}

// GenerateInventoryReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, report *dataset.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Completo de Inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.titleRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(g.summaryRows(report)...)
	m.AddRows(line.NewRow(2))

	m.AddRows(sectionTitle("Inventario de Productos", colorPrimary))
	m.AddRows(g.productHeaderRow())
	for _, r := range g.productRows(report.Products, report) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2))

	if len(report.LowStock) > 0 {
		m.AddRows(sectionTitle("Productos con Stock Bajo", colorAlert))
		m.AddRows(g.lowStockHeaderRow())
		for _, r := range g.lowStockRows(report.LowStock, report) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(sectionTitle("Transacciones Recientes", colorPrimary))
	m.AddRows(g.transactionHeaderRow())
	for _, r := range g.transactionRows(report.RecentTransactions, report) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2))

	m.AddRows(sectionTitle("Categorías", colorPrimary))
	for _, r := range g.countRows(report.CategoryCounts) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2))

	m.AddRows(sectionTitle("Marcas", colorPrimary))
	for _, r := range g.countRows(report.BrandCounts) {
		m.AddRows(r)
	}

	if len(report.Suppliers) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitle("Proveedores", colorPrimary))
		m.AddRows(g.supplierHeaderRow())
		for _, r := range g.supplierRows(report.Suppliers) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) titleRows(report *dataset.Report) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Reporte Completo de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Generado el: "+report.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Center, Color: colorGray,
			}),
		)),
	}
}

func (g *MarotoReportGenerator) summaryRows(report *dataset.Report) []core.Row {
	s := report.Summary
	item := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(4).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(8).Add(text.New(value, props.Text{Size: 9})),
		)
	}
	return []core.Row{
		sectionTitle("Resumen General", colorPrimary),
		item("Total de Productos:", fmt.Sprintf("%d", s.TotalProducts)),
		item("Valor Total del Inventario:", g.formatCurrency(s.TotalValue)),
		item("Productos con Stock Bajo:", fmt.Sprintf("%d", s.LowStockCount)),
		item("Total de Transacciones:", fmt.Sprintf("%d", s.TransactionCount)),
	}
}

func (g *MarotoReportGenerator) productHeaderRow() core.Row {
	return row.New(7).Add(
		headerCol("Producto", 3),
		headerCol("Categoría", 2),
		headerCol("Marca", 2),
		headerCol("Stock", 1),
		headerCol("Mín.", 1),
		headerCol("P. Compra", 1),
		headerCol("P. Venta", 1),
		headerCol("Vence", 1),
	)
}

func (g *MarotoReportGenerator) productRows(products []*entity.Product, report *dataset.Report) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			cell(p.Name, 3, align.Left),
			cell(lookup(report.CategoryNames, p.CategoryID), 2, align.Left),
			cell(lookup(report.BrandNames, p.BrandID), 2, align.Left),
			cell(fmt.Sprintf("%d", p.CurrentStock), 1, align.Center),
			cell(fmt.Sprintf("%d", p.MinStockLevel), 1, align.Center),
			cell(g.formatCurrency(p.PurchasePrice), 1, align.Right),
			cell(g.formatCurrency(p.SellingPrice), 1, align.Right),
			cell(nonEmpty(p.ExpirationDate, "N/A"), 1, align.Center),
		))
	}
	return result
}

func (g *MarotoReportGenerator) lowStockHeaderRow() core.Row {
	return row.New(7).Add(
		headerCol("Producto", 5),
		headerCol("Stock Actual", 2),
		headerCol("Stock Mínimo", 2),
		headerCol("Categoría", 3),
	)
}

func (g *MarotoReportGenerator) lowStockRows(products []*entity.Product, report *dataset.Report) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			cell(p.Name, 5, align.Left),
			cell(fmt.Sprintf("%d", p.CurrentStock), 2, align.Center),
			cell(fmt.Sprintf("%d", p.MinStockLevel), 2, align.Center),
			cell(lookup(report.CategoryNames, p.CategoryID), 3, align.Left),
		))
	}
	return result
}

func (g *MarotoReportGenerator) transactionHeaderRow() core.Row {
	return row.New(7).Add(
		headerCol("# Transacción", 2),
		headerCol("Fecha", 2),
		headerCol("Tipo", 1),
		headerCol("Productos", 4),
		headerCol("Cliente/Proveedor", 2),
		headerCol("Total", 1),
	)
}

func (g *MarotoReportGenerator) transactionRows(transactions []*entity.Transaction, report *dataset.Report) []core.Row {
	result := make([]core.Row, 0, len(transactions))
	for _, t := range transactions {
		tipo := "Salida"
		if t.Type == entity.TransactionEntry {
			tipo = "Entrada"
		}
		counterpart := t.BuyerName
		if counterpart == "" {
			counterpart = t.SupplierName
		}
		items := make([]string, 0, len(t.Items))
		for _, it := range t.Items {
			items = append(items, fmt.Sprintf("%s (%d)", lookup(report.ProductNames, it.ProductID), it.Quantity))
		}
		result = append(result, row.New(6).Add(
			cell(t.TransactionNumber, 2, align.Left),
			cell(t.Date.Format("02/01/2006"), 2, align.Center),
			cell(tipo, 1, align.Center),
			cell(strings.Join(items, ", "), 4, align.Left),
			cell(nonEmpty(counterpart, "N/A"), 2, align.Left),
			cell(g.formatCurrency(t.TotalAmount), 1, align.Right),
		))
	}
	return result
}

func (g *MarotoReportGenerator) countRows(counts []dataset.NameCount) []core.Row {
	result := make([]core.Row, 0, len(counts))
	for _, c := range counts {
		result = append(result, row.New(5).Add(
			col.New(8).Add(text.New(c.Name, props.Text{Size: 9})),
			col.New(4).Add(text.New(fmt.Sprintf("%d productos", c.Count), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			})),
		))
	}
	return result
}

func (g *MarotoReportGenerator) supplierHeaderRow() core.Row {
	return row.New(7).Add(
		headerCol("Proveedor", 4),
		headerCol("Contacto", 3),
		headerCol("Teléfono", 2),
		headerCol("Email", 3),
	)
}

func (g *MarotoReportGenerator) supplierRows(suppliers []*entity.Supplier) []core.Row {
	result := make([]core.Row, 0, len(suppliers))
	for _, s := range suppliers {
		result = append(result, row.New(6).Add(
			cell(s.Name, 4, align.Left),
			cell(nonEmpty(s.Contact, "N/A"), 3, align.Left),
			cell(nonEmpty(s.Phone, "N/A"), 2, align.Left),
			cell(nonEmpty(s.Email, "N/A"), 3, align.Left),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(title string, color *props.Color) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 1}),
	))
}

func headerCol(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
}

// formatCurrency formatea un monto con separadores de miles en locale español.
func (g *MarotoReportGenerator) formatCurrency(d decimal.Decimal) string {
	f, _ := d.Float64()
	return g.printer.Sprintf("$%.2f", f)
}

func lookup(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "N/A"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
