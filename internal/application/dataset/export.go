package dataset

import (
	"time"

	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
)

// ExportUseCase produce el snapshot portable del dataset completo: las cinco
// colecciones de datos, con tag de versión y fecha de exportación. Es una
// lectura pura, sin mutación.
type ExportUseCase struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	categories   repository.CategoryRepository
	brands       repository.BrandRepository
	suppliers    repository.SupplierRepository
}

// NewExportUseCase construye el caso de uso con los cinco puertos.
func NewExportUseCase(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	suppliers repository.SupplierRepository,
) *ExportUseCase {
	return &ExportUseCase{
		products:     products,
		transactions: transactions,
		categories:   categories,
		brands:       brands,
		suppliers:    suppliers,
	}
}

// Export lee las cinco colecciones y arma el snapshot.
func (uc *ExportUseCase) Export() (*dto.DatasetSnapshot, error) {
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

	data := dto.DatasetData{
		Products:     make([]dto.ProductRecord, 0, len(products)),
		Transactions: make([]dto.TransactionRecord, 0, len(transactions)),
		Categories:   make([]dto.CategoryRecord, 0, len(categories)),
		Brands:       make([]dto.BrandRecord, 0, len(brands)),
		Suppliers:    make([]dto.SupplierRecord, 0, len(suppliers)),
	}
	for _, p := range products {
		data.Products = append(data.Products, productToRecord(p))
	}
	for _, t := range transactions {
		data.Transactions = append(data.Transactions, transactionToRecord(t))
	}
	for _, c := range categories {
		data.Categories = append(data.Categories, dto.CategoryRecord{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	for _, b := range brands {
		data.Brands = append(data.Brands, dto.BrandRecord{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
	}
	for _, s := range suppliers {
		data.Suppliers = append(data.Suppliers, supplierToRecord(s))
	}

	return &dto.DatasetSnapshot{
		ExportDate: time.Now().UTC(),
		Version:    dto.DatasetVersion,
		Data:       data,
	}, nil
}

// ── Mapeo entidad ↔ registro portable ─────────────────────────────────────────

func productToRecord(p *entity.Product) dto.ProductRecord {
	return dto.ProductRecord{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		BrandID:        p.BrandID,
		SupplierID:     p.SupplierID,
		PurchasePrice:  p.PurchasePrice,
		SellingPrice:   p.SellingPrice,
		CurrentStock:   p.CurrentStock,
		MinStockLevel:  p.MinStockLevel,
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func recordToProduct(r dto.ProductRecord) *entity.Product {
	return &entity.Product{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		CategoryID:     r.CategoryID,
		BrandID:        r.BrandID,
		SupplierID:     r.SupplierID,
		PurchasePrice:  r.PurchasePrice,
		SellingPrice:   r.SellingPrice,
		CurrentStock:   r.CurrentStock,
		MinStockLevel:  r.MinStockLevel,
		ExpirationDate: r.ExpirationDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func transactionToRecord(t *entity.Transaction) dto.TransactionRecord {
	items := make([]dto.TransactionItemDTO, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransactionItemDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return dto.TransactionRecord{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		Date:              t.Date,
		Type:              t.Type,
		Items:             items,
		BuyerName:         t.BuyerName,
		SupplierName:      t.SupplierName,
		TotalAmount:       t.TotalAmount,
		CreatedAt:         t.CreatedAt,
	}
}

func recordToTransaction(r dto.TransactionRecord) *entity.Transaction {
	items := make([]entity.TransactionItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.TransactionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &entity.Transaction{
		ID:                r.ID,
		TransactionNumber: r.TransactionNumber,
		Date:              r.Date,
		Type:              r.Type,
		Items:             items,
		BuyerName:         r.BuyerName,
		SupplierName:      r.SupplierName,
		TotalAmount:       r.TotalAmount,
		CreatedAt:         r.CreatedAt,
	}
}

func supplierToRecord(s *entity.Supplier) dto.SupplierRecord {
	return dto.SupplierRecord{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
