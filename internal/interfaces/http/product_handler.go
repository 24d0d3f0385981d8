package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto de una pasta
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la pasta"
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.SKU == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku y name son requeridos"})
	}
	out, err := h.uc.Create(userID, c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos de una pasta
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la pasta"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/suppliers/{id}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), c.Params("id"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
