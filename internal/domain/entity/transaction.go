package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionEntry = "entry" // entrada de mercancía
	TransactionExit  = "exit"  // salida / venta
)

// TransactionItem es una línea de una transacción: referencia un producto por id.
type TransactionItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Transaction representa un movimiento de inventario (entrada o salida) con
// una o más líneas. Los items referencian productos por id sin foreign key.
type Transaction struct {
	ID                string
	TransactionNumber string
	Date              time.Time
	Type              string // entry, exit
	Items             []TransactionItem
	BuyerName         string // salidas
	SupplierName      string // entradas
	TotalAmount       decimal.Decimal
	CreatedAt         time.Time
}
