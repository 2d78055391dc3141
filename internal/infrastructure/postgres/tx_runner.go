package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elparadero/inventario-api/internal/application/dataset"
	"github.com/elparadero/inventario-api/internal/domain/repository"
)

var _ dataset.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunImport inicia una transacción con los cinco repositorios del dataset
// atados a ella y hace Commit o Rollback. La importación completa (vaciar más
// repoblar) vive dentro de esta transacción.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categoryRepo := NewCategoryRepository(tx)
	brandRepo := NewBrandRepository(tx)
	supplierRepo := NewSupplierRepository(tx)
	productRepo := NewProductRepository(tx)
	transactionRepo := NewTransactionRepository(tx)

	if err := fn(categoryRepo, brandRepo, supplierRepo, productRepo, transactionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
