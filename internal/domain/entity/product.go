package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. CategoryID, BrandID y
// SupplierID referencian catálogos por id; la integridad no se fuerza al
// escribir (ver pase de referencias en la importación).
type Product struct {
	ID             string
	Name           string
	Description    string
	CategoryID     string
	BrandID        string
	SupplierID     string
	PurchasePrice  decimal.Decimal
	SellingPrice   decimal.Decimal
	CurrentStock   int
	MinStockLevel  int
	ExpirationDate string // YYYY-MM-DD, vacío si no aplica
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LowStock indica si el stock actual está por debajo del mínimo configurado.
func (p *Product) LowStock() bool {
	return p.CurrentStock < p.MinStockLevel
}

// InventoryValue devuelve currentStock × sellingPrice.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
