package dataset_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elparadero/inventario-api/internal/application/dataset"
	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
	"github.com/elparadero/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con las cinco colecciones y runner transaccional de prueba
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories   []*entity.Category
	brands       []*entity.Brand
	suppliers    []*entity.Supplier
	products     []*entity.Product
	transactions []*entity.Transaction

	// failCreateProductID fuerza un error al insertar ese producto, para
	// simular un fallo a mitad de la importación.
	failCreateProductID string
}

func (s *memStore) snapshot() memStore {
	cp := memStore{failCreateProductID: s.failCreateProductID}
	cp.categories = append(cp.categories, s.categories...)
	cp.brands = append(cp.brands, s.brands...)
	cp.suppliers = append(cp.suppliers, s.suppliers...)
	cp.products = append(cp.products, s.products...)
	cp.transactions = append(cp.transactions, s.transactions...)
	return cp
}

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) Create(c *entity.Category) error { r.s.categories = append(r.s.categories, c); return nil }
func (r memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r memCategoryRepo) Update(*entity.Category) error        { return nil }
func (r memCategoryRepo) List() ([]*entity.Category, error)    { return r.s.categories, nil }
func (r memCategoryRepo) Delete(string) error                  { return nil }
func (r memCategoryRepo) DeleteAll() error                     { r.s.categories = nil; return nil }

type memBrandRepo struct{ s *memStore }

func (r memBrandRepo) Create(b *entity.Brand) error { r.s.brands = append(r.s.brands, b); return nil }
func (r memBrandRepo) GetByID(id string) (*entity.Brand, error) {
	for _, b := range r.s.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}
func (r memBrandRepo) Update(*entity.Brand) error     { return nil }
func (r memBrandRepo) List() ([]*entity.Brand, error) { return r.s.brands, nil }
func (r memBrandRepo) Delete(string) error            { return nil }
func (r memBrandRepo) DeleteAll() error               { r.s.brands = nil; return nil }

type memSupplierRepo struct{ s *memStore }

func (r memSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers = append(r.s.suppliers, sp); return nil }
func (r memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, sp := range r.s.suppliers {
		if sp.ID == id {
			return sp, nil
		}
	}
	return nil, nil
}
func (r memSupplierRepo) Update(*entity.Supplier) error        { return nil }
func (r memSupplierRepo) List() ([]*entity.Supplier, error)    { return r.s.suppliers, nil }
func (r memSupplierRepo) Delete(string) error                  { return nil }
func (r memSupplierRepo) DeleteAll() error                     { r.s.suppliers = nil; return nil }

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(p *entity.Product) error {
	if r.s.failCreateProductID != "" && p.ID == r.s.failCreateProductID {
		return errors.New("fallo simulado al insertar producto")
	}
	r.s.products = append(r.s.products, p)
	return nil
}
func (r memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r memProductRepo) Update(*entity.Product) error     { return nil }
func (r memProductRepo) List() ([]*entity.Product, error) { return r.s.products, nil }
func (r memProductRepo) Delete(string) error              { return nil }
func (r memProductRepo) DeleteAll() error                 { r.s.products = nil; return nil }

type memTransactionRepo struct{ s *memStore }

func (r memTransactionRepo) Create(t *entity.Transaction) error {
	r.s.transactions = append(r.s.transactions, t)
	return nil
}
func (r memTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range r.s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r memTransactionRepo) List() ([]*entity.Transaction, error) { return r.s.transactions, nil }
func (r memTransactionRepo) Delete(string) error                  { return nil }
func (r memTransactionRepo) DeleteAll() error                     { r.s.transactions = nil; return nil }

// memTxRunner emula la semántica todo-o-nada de una transacción de BD:
// trabaja sobre el store real y, si fn falla, restaura el estado previo.
type memTxRunner struct{ s *memStore }

func (r memTxRunner) RunImport(_ context.Context, fn func(
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
) error) error {
	before := r.s.snapshot()
	err := fn(
		memCategoryRepo{r.s}, memBrandRepo{r.s}, memSupplierRepo{r.s},
		memProductRepo{r.s}, memTransactionRepo{r.s},
	)
	if err != nil {
		*r.s = before
		return err
	}
	return nil
}

func exportUCFor(s *memStore) *dataset.ExportUseCase {
	return dataset.NewExportUseCase(
		memProductRepo{s}, memTransactionRepo{s},
		memCategoryRepo{s}, memBrandRepo{s}, memSupplierRepo{s},
	)
}

func importUCFor(s *memStore) *dataset.ImportUseCase {
	return dataset.NewImportUseCase(memTxRunner{s}, logger.Nop())
}

func seedStore() *memStore {
	s := &memStore{}
	s.categories = []*entity.Category{{ID: "c1", Name: "Bebidas"}, {ID: "c2", Name: "Snacks"}}
	s.brands = []*entity.Brand{{ID: "b1", Name: "Cola"}}
	s.suppliers = []*entity.Supplier{{ID: "s1", Name: "Distribuidora Sur", Phone: "555-0101"}}
	s.products = []*entity.Product{
		{
			ID: "p1", Name: "Gaseosa 1L", CategoryID: "c1", BrandID: "b1", SupplierID: "s1",
			PurchasePrice: decimal.NewFromInt(10), SellingPrice: decimal.NewFromInt(15),
			CurrentStock: 8, MinStockLevel: 5,
		},
		{
			ID: "p2", Name: "Papas 200g", CategoryID: "c2", BrandID: "b1",
			PurchasePrice: decimal.NewFromInt(3), SellingPrice: decimal.NewFromInt(5),
			CurrentStock: 2, MinStockLevel: 4,
		},
	}
	s.transactions = []*entity.Transaction{
		{
			ID: "t1", TransactionNumber: "TRX-1", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Type: entity.TransactionExit,
			Items: []entity.TransactionItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(15)},
			},
			BuyerName:   "Cliente",
			TotalAmount: decimal.NewFromInt(30),
		},
	}
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_SnapshotVersionado(t *testing.T) {
	s := seedStore()
	snap, err := exportUCFor(s).Export()
	require.NoError(t, err)

	assert.Equal(t, dto.DatasetVersion, snap.Version)
	assert.WithinDuration(t, time.Now(), snap.ExportDate, time.Minute)
	assert.Len(t, snap.Data.Products, 2)
	assert.Len(t, snap.Data.Transactions, 1)
	assert.Len(t, snap.Data.Categories, 2)
	assert.Len(t, snap.Data.Brands, 1)
	assert.Len(t, snap.Data.Suppliers, 1)
}

// Un store vacío exporta arreglos vacíos, no claves ausentes: el snapshot
// resultante siempre puede re-importarse.
func TestExport_StoreVacioEsReimportable(t *testing.T) {
	s := &memStore{}
	snap, err := exportUCFor(s).Export()
	require.NoError(t, err)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded dto.DatasetSnapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NoError(t, dataset.Validate(&decoded))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate e Import
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ColeccionesRequeridas(t *testing.T) {
	assert.ErrorIs(t, dataset.Validate(nil), domain.ErrInvalidFormat)

	// Falta la clave categories (slice nil tras el unmarshal).
	raw := []byte(`{"exportDate":"2026-01-01T00:00:00Z","version":"1.0","data":{"products":[],"brands":[]}}`)
	var snap dto.DatasetSnapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.ErrorIs(t, dataset.Validate(&snap), domain.ErrInvalidFormat)

	// Arreglos vacíos presentes sí son válidos.
	raw = []byte(`{"exportDate":"2026-01-01T00:00:00Z","version":"1.0","data":{"products":[],"categories":[],"brands":[]}}`)
	snap = dto.DatasetSnapshot{}
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.NoError(t, dataset.Validate(&snap))
}

func TestImport_FormatoInvalidoNoTocaElStore(t *testing.T) {
	s := seedStore()
	_, err := importUCFor(s).Import(context.Background(), &dto.DatasetSnapshot{
		Version: dto.DatasetVersion,
		Data:    dto.DatasetData{Products: []dto.ProductRecord{}}, // faltan categories y brands
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)

	assert.Len(t, s.products, 2, "el store queda intacto")
	assert.Len(t, s.categories, 2)
	assert.Len(t, s.transactions, 1)
}

func TestImport_ReemplazaTodo(t *testing.T) {
	s := seedStore()
	snap := &dto.DatasetSnapshot{
		ExportDate: time.Now(),
		Version:    dto.DatasetVersion,
		Data: dto.DatasetData{
			Categories: []dto.CategoryRecord{{ID: "nc1", Name: "Bebidas"}},
			Brands:     []dto.BrandRecord{{ID: "nb1", Name: "Cola"}},
			Products:   []dto.ProductRecord{},
		},
	}

	result, err := importUCFor(s).Import(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, dto.DatasetCounts{Categories: 1, Brands: 1}, result.Imported)
	assert.Empty(t, result.MissingProducts)

	// Nada del contenido previo sobrevive.
	require.Len(t, s.categories, 1)
	assert.Equal(t, "nc1", s.categories[0].ID)
	assert.Empty(t, s.products)
	assert.Empty(t, s.transactions)
	assert.Empty(t, s.suppliers)
}

func TestImport_PreservaCamposTextualmente(t *testing.T) {
	s := seedStore()
	exported, err := exportUCFor(s).Export()
	require.NoError(t, err)

	// Round-trip por JSON, como haría un archivo real.
	raw, err := json.Marshal(exported)
	require.NoError(t, err)
	var snap dto.DatasetSnapshot
	require.NoError(t, json.Unmarshal(raw, &snap))

	dest := &memStore{}
	result, err := importUCFor(dest).Import(context.Background(), &snap)
	require.NoError(t, err)
	assert.Equal(t, dto.DatasetCounts{
		Products: 2, Transactions: 1, Categories: 2, Brands: 1, Suppliers: 1,
	}, result.Imported)

	p, err := memProductRepo{dest}.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p, "los ids se preservan, no se regeneran")
	assert.Equal(t, "Gaseosa 1L", p.Name)
	assert.True(t, p.SellingPrice.Equal(decimal.NewFromInt(15)))

	tx, err := memTransactionRepo{dest}.GetByID("t1")
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Len(t, tx.Items, 1)
	assert.Equal(t, "p1", tx.Items[0].ProductID)
}

func TestImport_ReportaReferenciasAProductosAusentes(t *testing.T) {
	s := seedStore()
	snap := &dto.DatasetSnapshot{
		Version: dto.DatasetVersion,
		Data: dto.DatasetData{
			Categories: []dto.CategoryRecord{},
			Brands:     []dto.BrandRecord{},
			Products:   []dto.ProductRecord{{ID: "p1", Name: "Gaseosa 1L"}},
			Transactions: []dto.TransactionRecord{
				{
					ID: "t1", Type: entity.TransactionExit,
					Items: []dto.TransactionItemDTO{
						{ProductID: "p1", Quantity: 1},
						{ProductID: "fantasma", Quantity: 2},
						{ProductID: "fantasma", Quantity: 3}, // repetido, se reporta una vez
					},
				},
			},
		},
	}

	result, err := importUCFor(s).Import(context.Background(), snap)
	require.NoError(t, err, "las referencias ausentes no bloquean la importación")
	assert.Equal(t, []string{"fantasma"}, result.MissingProducts)
	assert.Len(t, s.transactions, 1, "la transacción se importa igual")
}

func TestImport_FalloAMitadRestauraElStore(t *testing.T) {
	s := seedStore()
	s.failCreateProductID = "np2"

	snap := &dto.DatasetSnapshot{
		Version: dto.DatasetVersion,
		Data: dto.DatasetData{
			Categories: []dto.CategoryRecord{{ID: "nc1", Name: "Nueva"}},
			Brands:     []dto.BrandRecord{},
			Products: []dto.ProductRecord{
				{ID: "np1", Name: "Producto 1"},
				{ID: "np2", Name: "Producto 2"}, // este inserta con error
			},
		},
	}

	_, err := importUCFor(s).Import(context.Background(), snap)
	require.Error(t, err)

	// Todo-o-nada: el contenido previo sigue completo, nada nuevo quedó.
	assert.Len(t, s.categories, 2)
	assert.Len(t, s.products, 2)
	p, _ := memProductRepo{s}.GetByID("np1")
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Report
// ──────────────────────────────────────────────────────────────────────────────

func reportUCFor(s *memStore, gen dataset.ReportGenerator) *dataset.ReportUseCase {
	return dataset.NewReportUseCase(
		memProductRepo{s}, memTransactionRepo{s},
		memCategoryRepo{s}, memBrandRepo{s}, memSupplierRepo{s}, gen,
	)
}

func TestReportBuild_ResumenYStockBajo(t *testing.T) {
	s := seedStore()
	report, err := reportUCFor(s, nil).Build()
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalProducts)
	assert.Equal(t, 1, report.Summary.TransactionCount)
	// 8×15 + 2×5 = 130
	assert.True(t, report.Summary.TotalValue.Equal(decimal.NewFromInt(130)),
		"valor total = Σ stock × precio de venta, fue %s", report.Summary.TotalValue)

	require.Len(t, report.LowStock, 1, "solo p2 está bajo su mínimo")
	assert.Equal(t, "p2", report.LowStock[0].ID)
	assert.Equal(t, 1, report.Summary.LowStockCount)

	assert.Equal(t, "Bebidas", report.CategoryNames["c1"])
	assert.Equal(t, "Gaseosa 1L", report.ProductNames["p1"])
}

func TestReportBuild_ConteosPorCatalogo(t *testing.T) {
	s := seedStore()
	report, err := reportUCFor(s, nil).Build()
	require.NoError(t, err)

	assert.Contains(t, report.CategoryCounts, dataset.NameCount{Name: "Bebidas", Count: 1})
	assert.Contains(t, report.CategoryCounts, dataset.NameCount{Name: "Snacks", Count: 1})
	assert.Contains(t, report.BrandCounts, dataset.NameCount{Name: "Cola", Count: 2})
}

func TestReportBuild_TransaccionesRecientesLimitadas(t *testing.T) {
	s := &memStore{}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		s.transactions = append(s.transactions, &entity.Transaction{
			ID:   string(rune('a' + i)),
			Date: base.AddDate(0, 0, i),
			Type: entity.TransactionEntry,
		})
	}

	report, err := reportUCFor(s, nil).Build()
	require.NoError(t, err)

	require.Len(t, report.RecentTransactions, 20)
	// Orden descendente por fecha: la más nueva primero.
	for i := 1; i < len(report.RecentTransactions); i++ {
		prev := report.RecentTransactions[i-1].Date
		cur := report.RecentTransactions[i].Date
		assert.False(t, cur.After(prev), "las transacciones deben venir de más nueva a más vieja")
	}
	assert.Equal(t, base.AddDate(0, 0, 24), report.RecentTransactions[0].Date)
}

type captureGenerator struct {
	got *dataset.Report
}

func (g *captureGenerator) GenerateInventoryReport(_ context.Context, r *dataset.Report) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

func TestExportPDF_EntregaReporteAlGenerador(t *testing.T) {
	s := seedStore()
	gen := &captureGenerator{}

	out, err := reportUCFor(s, gen).ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), out)
	require.NotNil(t, gen.got)
	assert.Equal(t, 2, gen.got.Summary.TotalProducts)
}
