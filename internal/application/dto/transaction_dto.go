package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemDTO línea de una transacción.
type TransactionItemDTO struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateTransactionRequest entrada para registrar una transacción.
type CreateTransactionRequest struct {
	TransactionNumber string               `json:"transactionNumber"`
	Date              time.Time            `json:"date"`
	Type              string               `json:"type"` // entry | exit
	Items             []TransactionItemDTO `json:"items"`
	BuyerName         string               `json:"buyerName"`
	SupplierName      string               `json:"supplierName"`
	TotalAmount       decimal.Decimal      `json:"totalAmount"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
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

// CreateTransactionResponse incluye las referencias a productos inexistentes
// detectadas al registrar (se reportan, no bloquean).
type CreateTransactionResponse struct {
	Transaction     TransactionResponse `json:"transaction"`
	MissingProducts []string            `json:"missingProducts,omitempty"`
}

// TransactionListResponse listado de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
