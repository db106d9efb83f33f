package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tutu-catalog/internal/application/auth"
	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
)

// memUserRepo fake en memoria del puerto UserRepository, con inyección de
// fallo de conectividad en la búsqueda por email.
type memUserRepo struct {
	users       []entity.User
	findErr     error
	lastCreated *entity.User
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, *user)
	r.lastCreated = user
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "tutu-catalog-test",
	})
}

func TestRegisterUser_CreaClienteConPasswordHasheado(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "secreta123", Name: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCliente, out.Role, "el registro público siempre crea cliente")
	assert.Equal(t, "active", out.Status)
	require.NotNil(t, repo.lastCreated)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.lastCreated.PasswordHash), []byte("secreta123")))
}

func TestRegisterUser_EmailRepetidoEsEmailAlreadyExists(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_FalloDelStoreNoSeLeeComoEmailLibre(t *testing.T) {
	// Si la búsqueda por email falla (p. ej. conectividad), el registro debe
	// propagar el error en vez de seguir hacia el Create.
	storeErr := errors.New("find user by email: conexión rechazada")
	repo := &memUserRepo{findErr: storeErr}
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, repo.lastCreated, "no debe intentarse el Create")
}

func TestLogin_CredencialesValidasDevuelveTokenYUsuario(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "secreta123", Name: "Ana"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@test.com", out.User.Email)
	assert.Equal(t, entity.RoleCliente, out.User.Role)
}

func TestLogin_PasswordIncorrectoEsUnauthorized(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocidoEsUserNotFound(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoEsForbidden(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@test.com", Password: "secreta123"})
	require.NoError(t, err)
	repo.users[0].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
