package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/sales"
)

// ScheduleHandler operaciones sin estado sobre condiciones de pago.
type ScheduleHandler struct {
	uc *sales.ScheduleUseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *sales.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// ParseNotation godoc
// @Summary      Interpretar notación de parcelas
// @Description  Acepta "30/60/90", "30 60 90", "30,60,90" o "30-60-90". Los tokens inválidos se ignoran;
// @Description  una secuencia irregular se acepta con aviso.
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseNotationRequest  true  "Notación"
// @Success      200   {object}  dto.ParseNotationResponse
// @Router       /api/schedule/notation [post]
func (h *ScheduleHandler) ParseNotation(c *fiber.Ctx) error {
	var in dto.ParseNotationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.ParseNotation(in))
}

// EditDueDate godoc
// @Summary      Cambiar la fecha de una parcela
// @Description  Devuelve el término con offsets explícitos y las parcelas recalculadas.
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditDueDateRequest  true  "Término, índice (base 0) y nueva fecha"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/schedule/edit-date [post]
func (h *ScheduleHandler) EditDueDate(c *fiber.Ctx) error {
	var in dto.EditDueDateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.EditDueDate(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
