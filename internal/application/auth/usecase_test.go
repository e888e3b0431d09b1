package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-pro/internal/application/auth"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/pos-pro/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *memUserRepo) UpdateStatus(id, status string) error {
	if u, ok := r.users[id]; ok {
		u.Status = status
	}
	return nil
}
func (r *memUserRepo) UpdatePassword(id, hash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func newAuthFixture() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "pos-pro"})
	return uc, repo
}

func TestAuth_RegistroYLogin(t *testing.T) {
	uc, _ := newAuthFixture()

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "caja@tienda.co", Password: "secreto123", Name: "Caja 1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCajero, user.Role)

	resp, err := uc.Login(dto.LoginRequest{Email: "caja@tienda.co", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// El token lleva el userID y el rol para el middleware
	userID, role, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleCajero, role)
}

func TestAuth_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "caja@tienda.co", Password: "secreto123"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "caja@tienda.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "caja@tienda.co", Password: "secreto123"})
	require.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: "caja@tienda.co", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_UsuarioInactivo(t *testing.T) {
	uc, repo := newAuthFixture()

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "caja@tienda.co", Password: "secreto123"})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(user.ID, "suspended"))

	_, err = uc.Login(dto.LoginRequest{Email: "caja@tienda.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuth_RolInvalido(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@tienda.co", Password: "secreto123", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
