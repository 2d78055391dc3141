package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Las claves category,
// brand y supplier referencian catálogos por id.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CategoryID     string          `json:"category"`
	BrandID        string          `json:"brand"`
	SupplierID     string          `json:"supplier"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	CurrentStock   int             `json:"currentStock"`
	MinStockLevel  int             `json:"minStockLevel"`
	ExpirationDate string          `json:"expirationDate"`
}

// UpdateProductRequest parche parcial sobre un producto.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	CategoryID     *string          `json:"category"`
	BrandID        *string          `json:"brand"`
	SupplierID     *string          `json:"supplier"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	CurrentStock   *int             `json:"currentStock"`
	MinStockLevel  *int             `json:"minStockLevel"`
	ExpirationDate *string          `json:"expirationDate"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	CategoryID     string          `json:"category"`
	BrandID        string          `json:"brand"`
	SupplierID     string          `json:"supplier,omitempty"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	CurrentStock   int             `json:"currentStock"`
	MinStockLevel  int             `json:"minStockLevel"`
	ExpirationDate string          `json:"expirationDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
