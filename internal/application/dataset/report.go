package dataset

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
)

// Cantidad de transacciones recientes incluidas en el reporte.
const recentTransactionLimit = 20

// Summary cifras agregadas del inventario.
type Summary struct {
	TotalProducts int
	// TotalValue = Σ currentStock × sellingPrice sobre todos los productos.
	TotalValue       decimal.Decimal
	LowStockCount    int
	TransactionCount int
}

// NameCount nombre de catálogo con su cantidad de productos asociados.
type NameCount struct {
	Name  string
	Count int
}

// Report es la vista derivada que alimenta el documento de reporte: resumen,
// listados y conteos, ya ordenados y filtrados. Solo lectura.
type Report struct {
	GeneratedAt        time.Time
	Summary            Summary
	Products           []*entity.Product
	LowStock           []*entity.Product
	RecentTransactions []*entity.Transaction
	CategoryCounts     []NameCount
	BrandCounts        []NameCount
	Suppliers          []*entity.Supplier

	// Índices id → nombre para resolver referencias en las tablas.
	CategoryNames map[string]string
	BrandNames    map[string]string
	ProductNames  map[string]string
}

// ReportUseCase arma el reporte y lo entrega como documento vía el generador.
type ReportUseCase struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	categories   repository.CategoryRepository
	brands       repository.BrandRepository
	suppliers    repository.SupplierRepository
	generator    ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	suppliers repository.SupplierRepository,
	generator ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		products:     products,
		transactions: transactions,
		categories:   categories,
		brands:       brands,
		suppliers:    suppliers,
		generator:    generator,
	}
}

// Build calcula la vista derivada: resumen, subset de stock bajo, las 20
// transacciones más recientes (fecha descendente, empates en orden original)
// y los conteos por categoría y marca.
func (uc *ReportUseCase) Build() (*Report, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	transactions, err := uc.transactions.List()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	brands, err := uc.brands.List()
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	var lowStock []*entity.Product
	for _, p := range products {
		totalValue = totalValue.Add(p.InventoryValue())
		if p.LowStock() {
			lowStock = append(lowStock, p)
		}
	}

	recent := make([]*entity.Transaction, len(transactions))
	copy(recent, transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	productsByCategory := make(map[string]int)
	productsByBrand := make(map[string]int)
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productsByCategory[p.CategoryID]++
		productsByBrand[p.BrandID]++
		productNames[p.ID] = p.Name
	}

	categoryCounts := make([]NameCount, 0, len(categories))
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryCounts = append(categoryCounts, NameCount{Name: c.Name, Count: productsByCategory[c.ID]})
		categoryNames[c.ID] = c.Name
	}
	brandCounts := make([]NameCount, 0, len(brands))
	brandNames := make(map[string]string, len(brands))
	for _, b := range brands {
		brandCounts = append(brandCounts, NameCount{Name: b.Name, Count: productsByBrand[b.ID]})
		brandNames[b.ID] = b.Name
	}

	return &Report{
		GeneratedAt: time.Now(),
		Summary: Summary{
			TotalProducts:    len(products),
			TotalValue:       totalValue,
			LowStockCount:    len(lowStock),
			TransactionCount: len(transactions),
		},
		Products:           products,
		LowStock:           lowStock,
		RecentTransactions: recent,
		CategoryCounts:     categoryCounts,
		BrandCounts:        brandCounts,
		Suppliers:          suppliers,
		CategoryNames:      categoryNames,
		BrandNames:         brandNames,
		ProductNames:       productNames,
	}, nil
}

// ExportPDF arma el reporte y lo renderiza con el generador configurado.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.Build()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryReport(ctx, report)
}
