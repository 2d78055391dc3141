package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL. Los items se guardan como JSONB en la misma fila: una
// transacción es un documento, sus líneas no se consultan por separado.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva transacción.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	items, err := json.Marshal(tx.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO transactions (id, transaction_number, date, type, items, buyer_name,
			supplier_name, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionNumber, tx.Date, tx.Type, items, tx.BuyerName,
		tx.SupplierName, tx.TotalAmount, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, transaction_number, date, type, items, buyer_name, supplier_name, total_amount, created_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TransactionNumber, &t.Date, &t.Type, &items, &t.BuyerName,
		&t.SupplierName, &t.TotalAmount, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if err := json.Unmarshal(items, &t.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &t, nil
}

// List lista todas las transacciones en orden de creación.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	query := `
		SELECT id, transaction_number, date, type, items, buyer_name, supplier_name, total_amount, created_at
		FROM transactions ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var items []byte
		if err := rows.Scan(&t.ID, &t.TransactionNumber, &t.Date, &t.Type, &items,
			&t.BuyerName, &t.SupplierName, &t.TotalAmount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if err := json.Unmarshal(items, &t.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla de transacciones (importación de snapshot).
func (r *TransactionRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions`)
	if err != nil {
		return fmt.Errorf("delete all transactions: %w", err)
	}
	return nil
}
