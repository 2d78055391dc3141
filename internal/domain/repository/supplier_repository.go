package repository

import "github.com/elparadero/inventario-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Delete(id string) error
	DeleteAll() error
}
