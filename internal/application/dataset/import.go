package dataset

import (
	"context"

	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
	"github.com/elparadero/inventario-api/pkg/logger"
)

// ImportUseCase reemplaza el dataset completo por el contenido de un snapshot.
// La operación es destructiva e irreversible: el caller debe obtener
// confirmación explícita (ver Counts) antes de invocar Import.
//
// La validación estructural ocurre SIEMPRE antes de cualquier paso destructivo.
// El borrado y las inserciones corren dentro de una sola transacción de BD,
// así un fallo a mitad de camino nunca deja el store parcialmente poblado.
type ImportUseCase struct {
	runner TxRunner
	log    *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(runner TxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{runner: runner, log: log}
}

// Counts devuelve la cantidad de registros por colección del snapshot, para
// que el caller arme el mensaje de confirmación.
func Counts(snap *dto.DatasetSnapshot) dto.DatasetCounts {
	return dto.DatasetCounts{
		Products:     len(snap.Data.Products),
		Transactions: len(snap.Data.Transactions),
		Categories:   len(snap.Data.Categories),
		Brands:       len(snap.Data.Brands),
		Suppliers:    len(snap.Data.Suppliers),
	}
}

// Validate verifica la estructura del snapshot: products, categories y brands
// deben venir como arreglos (pueden estar vacíos); transactions y suppliers
// son opcionales. Devuelve ErrInvalidFormat sin tocar ninguna colección.
func Validate(snap *dto.DatasetSnapshot) error {
	if snap == nil {
		return domain.ErrInvalidFormat
	}
	if snap.Data.Products == nil || snap.Data.Categories == nil || snap.Data.Brands == nil {
		return domain.ErrInvalidFormat
	}
	return nil
}

// Import valida el snapshot y luego, en una sola transacción, vacía las cinco
// colecciones e inserta en orden: categorías, marcas, proveedores, productos,
// transacciones. Los campos se preservan textualmente, sin regenerar ids.
func (uc *ImportUseCase) Import(ctx context.Context, snap *dto.DatasetSnapshot) (*dto.ImportResult, error) {
	if err := Validate(snap); err != nil {
		return nil, err
	}

	missing := missingProductRefs(snap)
	if len(missing) > 0 {
		uc.log.Warn().
			Strs("product_ids", missing).
			Msg("snapshot con transacciones que referencian productos ausentes")
	}

	err := uc.runner.RunImport(ctx, func(
		categories repository.CategoryRepository,
		brands repository.BrandRepository,
		suppliers repository.SupplierRepository,
		products repository.ProductRepository,
		transactions repository.TransactionRepository,
	) error {
		if err := transactions.DeleteAll(); err != nil {
			return err
		}
		if err := products.DeleteAll(); err != nil {
			return err
		}
		if err := suppliers.DeleteAll(); err != nil {
			return err
		}
		if err := brands.DeleteAll(); err != nil {
			return err
		}
		if err := categories.DeleteAll(); err != nil {
			return err
		}

		for _, r := range snap.Data.Categories {
			if err := categories.Create(&entity.Category{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}); err != nil {
				return err
			}
		}
		for _, r := range snap.Data.Brands {
			if err := brands.Create(&entity.Brand{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}); err != nil {
				return err
			}
		}
		for _, r := range snap.Data.Suppliers {
			s := r
			if err := suppliers.Create(&entity.Supplier{
				ID: s.ID, Name: s.Name, Contact: s.Contact, Phone: s.Phone, Email: s.Email,
				CreatedAt: s.CreatedAt,
			}); err != nil {
				return err
			}
		}
		for _, r := range snap.Data.Products {
			if err := products.Create(recordToProduct(r)); err != nil {
				return err
			}
		}
		for _, r := range snap.Data.Transactions {
			if err := transactions.Create(recordToTransaction(r)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := Counts(snap)
	uc.log.Info().
		Int("products", counts.Products).
		Int("transactions", counts.Transactions).
		Int("categories", counts.Categories).
		Int("brands", counts.Brands).
		Int("suppliers", counts.Suppliers).
		Msg("dataset importado")

	return &dto.ImportResult{Imported: counts, MissingProducts: missing}, nil
}

// missingProductRefs recorre los items de las transacciones del snapshot y
// junta los ids de producto que no vienen en el propio snapshot.
func missingProductRefs(snap *dto.DatasetSnapshot) []string {
	known := make(map[string]bool, len(snap.Data.Products))
	for _, p := range snap.Data.Products {
		known[p.ID] = true
	}
	seen := make(map[string]bool)
	var missing []string
	for _, t := range snap.Data.Transactions {
		for _, it := range t.Items {
			if !known[it.ProductID] && !seen[it.ProductID] {
				seen[it.ProductID] = true
				missing = append(missing, it.ProductID)
			}
		}
	}
	return missing
}
