package repository

import "github.com/elparadero/inventario-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
	Delete(id string) error
	DeleteAll() error
}
