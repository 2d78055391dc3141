package repository

import "github.com/elparadero/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername busca sin distinguir mayúsculas/minúsculas.
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
}
