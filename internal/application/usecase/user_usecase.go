package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elparadero/inventario-api/internal/application/auth"
	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
)

// Forma local@dominio.tld; el email es opcional pero si viene debe cumplirla.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserUseCase aplica las reglas de negocio para identidades: validación por
// campo antes de mutar, unicidad de username sin distinguir mayúsculas y
// protección contra auto-eliminación/auto-desactivación.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create valida y crea un usuario. En fallo de validación devuelve
// domain.ValidationErrors con un mensaje por campo y no ocurre mutación.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	errs := domain.ValidationErrors{}

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		errs["username"] = "el nombre de usuario es requerido"
	case len(username) < 3:
		errs["username"] = "el nombre de usuario debe tener al menos 3 caracteres"
	default:
		existing, err := uc.repo.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			errs["username"] = "el nombre de usuario ya existe"
		}
	}

	if strings.TrimSpace(in.DisplayName) == "" {
		errs["displayName"] = "el nombre completo es requerido"
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !emailPattern.MatchString(email) {
		errs["email"] = "el email no es válido"
	}

	if len(in.Password) < 6 {
		errs["password"] = "el password debe tener al menos 6 caracteres"
	}

	role := in.Role
	if role == "" {
		role = entity.RoleEmpleado
	}
	if role != entity.RoleAdmin && role != entity.RoleEmpleado {
		errs["role"] = "rol inválido"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.ToLower(username),
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica un parche parcial al usuario con el id dado. Devuelve
// ErrUserNotFound si no existe; valida los campos presentes antes de mutar.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	errs := domain.ValidationErrors{}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		switch {
		case username == "":
			errs["username"] = "el nombre de usuario es requerido"
		case len(username) < 3:
			errs["username"] = "el nombre de usuario debe tener al menos 3 caracteres"
		default:
			existing, err := uc.repo.GetByUsername(username)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				errs["username"] = "el nombre de usuario ya existe"
			}
		}
		if !errs.Has("username") {
			user.Username = strings.ToLower(username)
		}
	}
	if in.DisplayName != nil {
		if strings.TrimSpace(*in.DisplayName) == "" {
			errs["displayName"] = "el nombre completo es requerido"
		} else {
			user.DisplayName = strings.TrimSpace(*in.DisplayName)
		}
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != "" && !emailPattern.MatchString(email) {
			errs["email"] = "el email no es válido"
		} else {
			user.Email = email
		}
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			errs["password"] = "el password debe tener al menos 6 caracteres"
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = string(hash)
		}
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleEmpleado {
			errs["role"] = "rol inválido"
		} else {
			user.Role = *in.Role
		}
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if len(errs) > 0 {
		return nil, errs
	}

	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Falla con ErrSelfDeletion si el objetivo es la
// identidad que ejecuta la acción, antes de cualquier mutación.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrSelfDeletion
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// ToggleActive invierte el flag activo. Falla con ErrSelfDeactivation si el
// objetivo es la identidad que ejecuta la acción. Aplicarlo dos veces seguidas
// restaura el estado original.
func (uc *UserUseCase) ToggleActive(actorID, id string) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, domain.ErrSelfDeactivation
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	active := !user.IsActive
	return uc.Update(id, dto.UpdateUserRequest{IsActive: &active})
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}
