package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/auth"
	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
	"github.com/jhoicas/Comissoes-api/internal/domain"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, userUC: userUC}
}

// Register godoc
// @Summary      Registrar representante
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < auth.MinPasswordLen {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// No revelar si el email existe
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		}
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.userUC.GetByID(userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Nombre"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/me [put]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.userUC.UpdateProfile(userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar password
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ChangePasswordRequest  true  "Password actual y nuevo"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/me/password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangePassword(userID, in); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
