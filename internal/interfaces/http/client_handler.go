package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Create(userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients?limit=20&offset=0
func (h *ClientHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(userID, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
