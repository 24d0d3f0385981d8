package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/domain"
	"github.com/jhoicas/Comissoes-api/pkg/logger"
)

// LocalLogger key del logger de la petición en c.Locals.
const LocalLogger = "logger"

// RequestLogger deja el logger en los locals para que handleError registre los
// errores que no se devuelven al cliente.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		c.Locals(LocalLogger, log)
		return c.Next()
	}
}

func requestLog(c *fiber.Ctx) *logger.Logger {
	if log, ok := c.Locals(LocalLogger).(*logger.Logger); ok && log != nil {
		return log
	}
	return logger.Nop()
}

// errorMapping sentinel de dominio → status y código HTTP. El orden importa: el
// primero que coincide con errors.Is gana.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInvalidTierList, fiber.StatusUnprocessableEntity, "INVALID_TIERS"},
	{domain.ErrInvalidRule, fiber.StatusUnprocessableEntity, "INVALID_RULE"},
	{domain.ErrInvalidPaymentTerm, fiber.StatusUnprocessableEntity, "INVALID_PAYMENT_TERM"},
	{domain.ErrInstallmentIndex, fiber.StatusUnprocessableEntity, "INVALID_INSTALLMENT"},
	{domain.ErrNegativeLine, fiber.StatusUnprocessableEntity, "NEGATIVE_LINE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// handleError responde con el status que corresponde al error de dominio. Sin mapeo
// responde 500 con un mensaje genérico; el detalle (pgx, red) solo va al log.
func handleError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	ev := requestLog(c).Error().Err(err).Str("method", c.Method()).Str("path", c.Path())
	if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
		ev = ev.Str("trace_id", sc.TraceID().String())
	}
	ev.Msg("error no mapeado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
}

// pageParams lee limit/offset con los mismos topes en todos los listados.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}.Normalize()
	return p.Limit, p.Offset
}
