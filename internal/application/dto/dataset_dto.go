package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Versión del formato portable de exportación.
const DatasetVersion = "1.0"

// ProductRecord registro de producto tal como viaja en el formato portable.
// Los campos se preservan textualmente en la importación: sin transformación
// ni regeneración de ids.
type ProductRecord struct {
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

// TransactionRecord registro de transacción del formato portable.
type TransactionRecord struct {
	ID                string               `json:"id"`
	TransactionNumber string               `json:"transactionNumber"`
	Date              time.Time            `json:"date"`
	Type              string               `json:"type"`
	Items             []TransactionItemDTO `json:"items"`
	BuyerName         string               `json:"buyerName,omitempty"`
	SupplierName      string               `json:"supplierName,omitempty"`
	TotalAmount       decimal.Decimal      `json:"totalAmount"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// CategoryRecord registro de categoría del formato portable.
type CategoryRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// BrandRecord registro de marca del formato portable.
type BrandRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SupplierRecord registro de proveedor del formato portable.
type SupplierRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DatasetData contenido de las cinco colecciones. Un slice nil indica que la
// clave no venía en el JSON (distinto de un arreglo vacío).
type DatasetData struct {
	Products     []ProductRecord     `json:"products"`
	Transactions []TransactionRecord `json:"transactions"`
	Categories   []CategoryRecord    `json:"categories"`
	Brands       []BrandRecord       `json:"brands"`
	Suppliers    []SupplierRecord    `json:"suppliers"`
}

// DatasetSnapshot formato portable autodescriptivo de exportación/importación.
type DatasetSnapshot struct {
	ExportDate time.Time   `json:"exportDate"`
	Version    string      `json:"version"`
	Data       DatasetData `json:"data"`
}

// DatasetCounts cantidad de registros por colección. Se usa para el mensaje de
// confirmación previo a una importación destructiva y en el resultado.
type DatasetCounts struct {
	Products     int `json:"products"`
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
	Brands       int `json:"brands"`
	Suppliers    int `json:"suppliers"`
}

// ImportResult resultado de una importación aplicada.
type ImportResult struct {
	Imported DatasetCounts `json:"imported"`
	// MissingProducts: ids de producto referenciados por items de transacciones
	// que no existen en el payload (se reportan, no bloquean).
	MissingProducts []string `json:"missingProducts,omitempty"`
}
