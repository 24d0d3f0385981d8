package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/usecase"
)

// RuleHandler reglas de comisión/impuesto de una pasta.
type RuleHandler struct {
	uc *usecase.RuleUseCase
}

// NewRuleHandler construye el handler.
func NewRuleHandler(uc *usecase.RuleUseCase) *RuleHandler {
	return &RuleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear regla (fija o por faixas)
// @Description  Si is_default es true, la regla default anterior de la misma pasta y target deja de serlo.
// @Tags         rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la pasta"
// @Param        body  body  dto.CreateRuleRequest  true  "Regla"
// @Success      201   {object}  dto.CommissionRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/rules [post]
func (h *RuleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.Target == "" || in.Kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, target y kind son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reglas de una pasta
// @Tags         rules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la pasta"
// @Success      200  {array}   dto.CommissionRuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/rules [get]
func (h *RuleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar regla
// @Description  Los productos que la usaban quedan sin regla para ese target.
// @Tags         rules
// @Security     Bearer
// @Param        ruleId  path  string  true  "ID de la regla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rules/{ruleId} [delete]
func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("ruleId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
