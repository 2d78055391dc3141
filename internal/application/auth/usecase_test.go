package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elparadero/inventario-api/internal/application/auth"
	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	pkgjwt "github.com/elparadero/inventario-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

const testSecret = "test-secret-key-for-unit-tests"

func buildAuthUC(t *testing.T, users ...*entity.User) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventario-test",
	}), repo
}

func userWithPassword(t *testing.T, username, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "user-" + username,
		Username:     username,
		DisplayName:  "Usuario " + username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     active,
	}
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := buildAuthUC(t, userWithPassword(t, "admin", "secreto123", true))

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token lleva la identidad completa: id, username y rol.
	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-admin", userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_UsernameSinDistinguirMayusculas(t *testing.T) {
	uc, _ := buildAuthUC(t, userWithPassword(t, "admin", "secreto123", true))

	out, err := uc.Login(dto.LoginRequest{Username: "  ADMIN ", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Username)
}

// Todo fallo de login devuelve el mismo error: no se revela si falló el
// username, el password o el estado de la cuenta.
func TestLogin_FalloUniforme(t *testing.T) {
	uc, _ := buildAuthUC(t,
		userWithPassword(t, "admin", "secreto123", true),
		userWithPassword(t, "inactivo", "secreto123", false),
	)

	cases := []struct {
		name string
		in   dto.LoginRequest
	}{
		{"usuario inexistente", dto.LoginRequest{Username: "fantasma", Password: "secreto123"}},
		{"password incorrecto", dto.LoginRequest{Username: "admin", Password: "incorrecto"}},
		{"cuenta desactivada", dto.LoginRequest{Username: "inactivo", Password: "secreto123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.Login(tc.in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestMe_SesionValida(t *testing.T) {
	uc, _ := buildAuthUC(t, userWithPassword(t, "admin", "secreto123", true))

	out, err := uc.Me("user-admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
}

// La sesión se invalida si la cuenta fue eliminada o desactivada desde otro
// lado, aunque el token siga siendo criptográficamente válido.
func TestMe_CuentaEliminadaODesactivada(t *testing.T) {
	uc, repo := buildAuthUC(t, userWithPassword(t, "admin", "secreto123", true))

	_, err := uc.Me("id-inexistente")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.users["user-admin"].IsActive = false
	_, err = uc.Me("user-admin")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
