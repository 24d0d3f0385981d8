package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/dto"
	"github.com/jhoicas/Comissoes-api/internal/application/sales"
)

// SaleHandler simulación, registro y consulta de ventas (protegido).
type SaleHandler struct {
	quoteUC  *sales.QuoteUseCase
	createUC *sales.CreateSaleUseCase
	queryUC  *sales.QueryUseCase
	pdfUC    *sales.PDFUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(quoteUC *sales.QuoteUseCase, createUC *sales.CreateSaleUseCase, queryUC *sales.QueryUseCase, pdfUC *sales.PDFUseCase) *SaleHandler {
	return &SaleHandler{quoteUC: quoteUC, createUC: createUC, queryUC: queryUC, pdfUC: pdfUC}
}

// Quote godoc
// @Summary      Simular venta
// @Description  Resuelve tasas por línea (reglas por faixas, tasas fijas, ediciones manuales),
// @Description  totaliza y genera las parcelas sin persistir nada.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteSaleRequest  true  "Venta borrador"
// @Success      200   {object}  dto.QuoteSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/quote [post]
func (h *SaleHandler) Quote(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.QuoteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.quoteUC.Quote(c.UserContext(), userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.QuoteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.SupplierID == "" || len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id y al menos una línea son requeridos"})
	}
	out, err := h.createUC.CreateSale(c.UserContext(), userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas por período
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	from, err := queryDate(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	limit, offset := pageParams(c)
	out, err := h.queryUC.List(userID, from, to, dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Extracto de parcelas en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadStatementPDF(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

func queryDate(c *fiber.Ctx, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dto.DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s debe tener formato YYYY-MM-DD", key)
	}
	return t, nil
}
