package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comissoes-api/internal/application/auth"
	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
	"github.com/jhoicas/Comissoes-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Comissoes-api/internal/interfaces/http"
)

type memUserRepo map[string]*entity.User

func (m memUserRepo) Create(u *entity.User) error { m[u.ID] = u; return nil }
func (m memUserRepo) GetByID(id string) (*entity.User, error) {
	return m[id], nil
}
func (m memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m memUserRepo) Update(u *entity.User) error { m[u.ID] = u; return nil }

// buildAccountApp monta el router completo; solo se ejercitan auth y perfil.
func buildAccountApp() *fiber.App {
	users := memUserRepo{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: testIssuer}),
		UserUC:    usecase.NewUserUseCase(users),
		JWTSecret: testJWTSecret,
	})
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, app *fiber.App, email, password string) (string, int) {
	t.Helper()
	resp := sendJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token, resp.StatusCode
}

func TestRouter_Health(t *testing.T) {
	resp := sendJSON(t, buildAccountApp(), http.MethodGet, "/api/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthHandler_FlujoDePerfil(t *testing.T) {
	app := buildAccountApp()

	resp := sendJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: "ana@mail.com", Password: "clave-segura", Name: "Ana"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token, status := login(t, app, "ana@mail.com", "clave-segura")
	require.Equal(t, http.StatusOK, status)

	resp = sendJSON(t, app, http.MethodGet, "/api/me", token, nil)
	var me dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	resp.Body.Close()
	assert.Equal(t, "Ana", me.Name)
	assert.Equal(t, entity.RoleRepresentante, me.Role)

	resp = sendJSON(t, app, http.MethodPut, "/api/me", token, dto.UpdateProfileRequest{Name: "Ana <b>Souza</b>"})
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	resp.Body.Close()
	assert.Equal(t, "Ana Souza", me.Name)

	resp = sendJSON(t, app, http.MethodPost, "/api/me/password", token, dto.ChangePasswordRequest{CurrentPassword: "equivocada", NewPassword: "clave-nueva"})
	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errBody.Code)

	resp = sendJSON(t, app, http.MethodPost, "/api/me/password", token, dto.ChangePasswordRequest{CurrentPassword: "clave-segura", NewPassword: "clave-nueva"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, status = login(t, app, "ana@mail.com", "clave-segura")
	assert.Equal(t, http.StatusUnauthorized, status)
	_, status = login(t, app, "ana@mail.com", "clave-nueva")
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthHandler_Register_Validaciones(t *testing.T) {
	app := buildAccountApp()
	tests := []struct {
		name   string
		in     dto.RegisterRequest
		status int
	}{
		{"sin email", dto.RegisterRequest{Password: "clave-segura"}, http.StatusBadRequest},
		{"password corto", dto.RegisterRequest{Email: "x@mail.com", Password: "corta"}, http.StatusBadRequest},
		{"ok", dto.RegisterRequest{Email: "x@mail.com", Password: "clave-segura"}, http.StatusCreated},
		{"duplicado", dto.RegisterRequest{Email: "X@mail.com", Password: "clave-segura"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := sendJSON(t, app, http.MethodPost, "/api/auth/register", "", tt.in)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAuthHandler_Me_SinToken(t *testing.T) {
	resp := sendJSON(t, buildAccountApp(), http.MethodGet, "/api/me", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
