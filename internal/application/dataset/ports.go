package dataset

import (
	"context"

	"github.com/elparadero/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es lo que convierte la importación en un
// reemplazo todo-o-nada: si fn falla, ningún borrado ni inserción queda
// aplicado.
type TxRunner interface {
	RunImport(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		brands repository.BrandRepository,
		suppliers repository.SupplierRepository,
		products repository.ProductRepository,
		transactions repository.TransactionRepository,
	) error) error
}

// ReportGenerator produce el documento binario del reporte de inventario.
// Lo implementa infrastructure/pdf con Maroto.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report *Report) ([]byte, error)
}
