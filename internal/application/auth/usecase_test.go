package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comissoes-api/internal/application/auth"
	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Comissoes-api/pkg/jwt"
)

type memUsers struct{ byEmail map[string]*entity.User }

func (m *memUsers) Create(u *entity.User) error { m.byEmail[u.Email] = u; return nil }
func (m *memUsers) GetByID(id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) GetByEmail(email string) (*entity.User, error) { return m.byEmail[email], nil }
func (m *memUsers) Update(u *entity.User) error                  { m.byEmail[u.Email] = u; return nil }

const secret = "test-secret"

func newAuth() (*auth.AuthUseCase, *memUsers) {
	repo := &memUsers{byEmail: map[string]*entity.User{}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}), repo
}

func TestRegisterYLogin(t *testing.T) {
	uc, repo := newAuth()
	user, err := uc.RegisterUser(dto.RegisterRequest{Email: " Ana@Mail.com ", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", user.Email)
	assert.Equal(t, entity.RoleRepresentante, user.Role)
	assert.NotEqual(t, "12345678", repo.byEmail["ana@mail.com"].PasswordHash)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@mail.com", Password: "12345678"})
	require.NoError(t, err)
	userID, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleRepresentante, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "A@B.com", Password: "otraclave1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Errores(t *testing.T) {
	uc, repo := newAuth()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "x@b.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.byEmail["a@b.com"].Status = "inactive"
	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestChangePassword(t *testing.T) {
	uc, _ := newAuth()
	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "rep@mail.com", Password: "clave-vieja"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   dto.ChangePasswordRequest
		err  error
	}{
		{"nuevo corto", dto.ChangePasswordRequest{CurrentPassword: "clave-vieja", NewPassword: "corto"}, domain.ErrInvalidInput},
		{"nuevo igual al actual", dto.ChangePasswordRequest{CurrentPassword: "clave-vieja", NewPassword: "clave-vieja"}, domain.ErrInvalidInput},
		{"actual errado", dto.ChangePasswordRequest{CurrentPassword: "otra-clave", NewPassword: "clave-nueva"}, domain.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, uc.ChangePassword(user.ID, tt.in), tt.err)
		})
	}

	assert.ErrorIs(t, uc.ChangePassword("no-existe", dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "clave-nueva"}), domain.ErrUserNotFound)

	require.NoError(t, uc.ChangePassword(user.ID, dto.ChangePasswordRequest{CurrentPassword: "clave-vieja", NewPassword: "clave-nueva"}))
	_, err = uc.Login(dto.LoginRequest{Email: "rep@mail.com", Password: "clave-vieja"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(dto.LoginRequest{Email: "rep@mail.com", Password: "clave-nueva"})
	assert.NoError(t, err)
}

func TestRegister_NombreSaneado(t *testing.T) {
	uc, _ := newAuth()
	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@mail.com", Password: "12345678", Name: "<b>Ana</b>  Souza"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.Name)

	other, err := uc.RegisterUser(dto.RegisterRequest{Email: "y@mail.com", Password: "12345678", Name: "<i></i>"})
	require.NoError(t, err)
	assert.Equal(t, "y@mail.com", other.Name)
}
