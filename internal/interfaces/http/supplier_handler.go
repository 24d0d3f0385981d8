package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
)

// SupplierHandler maneja las peticiones HTTP para pastas (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pasta
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Nombre y tasas por defecto"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pasta con sus reglas
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la pasta"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pasta
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la pasta"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pastas
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
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
