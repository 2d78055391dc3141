package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/application/usecase"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func mustCreate(t *testing.T, uc *usecase.UserUseCase, in dto.CreateUserRequest) *dto.UserResponse {
	t.Helper()
	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func validCreate(username string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username:    username,
		DisplayName: "Usuario de Prueba",
		Email:       "prueba@ejemplo.com",
		Password:    "secreto123",
		Role:        entity.RoleEmpleado,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaPasswordYNormalizaUsername(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out := mustCreate(t, uc, validCreate("  JPerez "))

	assert.Equal(t, "jperez", out.Username, "el username se guarda en minúsculas y sin espacios")
	assert.True(t, out.IsActive, "activo por defecto cuando isActive no viene")

	stored, err := repo.GetByUsername("jperez")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_ValidacionPorCampo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Username:    "jp", // muy corto
		DisplayName: "",
		Email:       "no-es-email",
		Password:    "123",
		Role:        "gerente",
	})
	require.Error(t, err)

	verrs, ok := err.(domain.ValidationErrors)
	require.True(t, ok, "el error debe ser ValidationErrors con un mensaje por campo")
	assert.True(t, verrs.Has("username"))
	assert.True(t, verrs.Has("displayName"))
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
	assert.True(t, verrs.Has("role"))

	list, _ := repo.List()
	assert.Empty(t, list, "en fallo de validación no ocurre mutación")
}

func TestUserCreate_EmailOpcional(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	in := validCreate("sinemail")
	in.Email = ""
	out := mustCreate(t, uc, in)
	assert.Empty(t, out.Email)
}

func TestUserCreate_RolVacioEsEmpleado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	in := validCreate("nuevo")
	in.Role = ""
	out := mustCreate(t, uc, in)
	assert.Equal(t, entity.RoleEmpleado, out.Role)
}

func TestUserCreate_UsernameDuplicadoSinDistinguirMayusculas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	mustCreate(t, uc, validCreate("jperez"))

	_, err := uc.Create(validCreate("JPEREZ"))
	require.Error(t, err)

	verrs, ok := err.(domain.ValidationErrors)
	require.True(t, ok)
	assert.True(t, verrs.Has("username"), "JPEREZ colisiona con jperez")

	list, _ := repo.List()
	assert.Len(t, list, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_ParcheParcial(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created := mustCreate(t, uc, validCreate("jperez"))

	nuevoNombre := "Juan Pérez"
	out, err := uc.Update(created.ID, dto.UpdateUserRequest{DisplayName: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "Juan Pérez", out.DisplayName)
	assert.Equal(t, "jperez", out.Username, "los campos no presentes no se tocan")
	assert.Equal(t, created.Role, out.Role)
}

func TestUserUpdate_PermiteConservarPropioUsername(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created := mustCreate(t, uc, validCreate("jperez"))

	// Reenviar el mismo username (con otra capitalización) no es colisión.
	mismo := "JPerez"
	out, err := uc.Update(created.ID, dto.UpdateUserRequest{Username: &mismo})
	require.NoError(t, err)
	assert.Equal(t, "jperez", out.Username)
}

func TestUserUpdate_UsernameDeOtroUsuarioColisiona(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	mustCreate(t, uc, validCreate("jperez"))
	otro := mustCreate(t, uc, validCreate("mgomez"))

	ocupado := "jperez"
	_, err := uc.Update(otro.ID, dto.UpdateUserRequest{Username: &ocupado})
	require.Error(t, err)

	verrs, ok := err.(domain.ValidationErrors)
	require.True(t, ok)
	assert.True(t, verrs.Has("username"))
}

func TestUserUpdate_NoExiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	nombre := "Alguien"
	_, err := uc.Update("id-inexistente", dto.UpdateUserRequest{DisplayName: &nombre})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y ToggleActive — protección de la propia cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_AutoEliminacionBloqueada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	admin := mustCreate(t, uc, validCreate("admin"))

	err := uc.Delete(admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDeletion)

	list, _ := repo.List()
	assert.Len(t, list, 1, "la cuenta sigue existiendo")
}

func TestUserDelete_OtroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	admin := mustCreate(t, uc, validCreate("admin"))
	otro := mustCreate(t, uc, validCreate("mgomez"))

	require.NoError(t, uc.Delete(admin.ID, otro.ID))

	list, _ := repo.List()
	assert.Len(t, list, 1)
}

func TestUserDelete_NoExiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	admin := mustCreate(t, uc, validCreate("admin"))
	err := uc.Delete(admin.ID, "id-inexistente")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestToggleActive_AutoDesactivacionBloqueada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	admin := mustCreate(t, uc, validCreate("admin"))

	_, err := uc.ToggleActive(admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDeactivation)

	stored, _ := repo.GetByID(admin.ID)
	assert.True(t, stored.IsActive, "el estado no cambia")
}

func TestToggleActive_DosVecesRestauraEstado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	admin := mustCreate(t, uc, validCreate("admin"))
	otro := mustCreate(t, uc, validCreate("mgomez"))

	out, err := uc.ToggleActive(admin.ID, otro.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = uc.ToggleActive(admin.ID, otro.ID)
	require.NoError(t, err)
	assert.True(t, out.IsActive, "dos toggles seguidos dejan el estado original")
}
