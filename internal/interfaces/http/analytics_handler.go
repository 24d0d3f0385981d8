package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comissoes-api/internal/application/analytics"
)

// AnalyticsHandler maneja los endpoints de analítica de comisiones.
type AnalyticsHandler struct {
	rankingUC   *analytics.RankingUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(rankingUC *analytics.RankingUseCase, dashboardUC *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{rankingUC: rankingUC, dashboardUC: dashboardUC}
}

// GetCommissionRanking godoc
// @Summary      Ranking de comisión por pasta
// @Description  Suma la comisión de las ventas por pasta, ordena de mayor a menor, conserva las
// @Description  N primeras y agrupa el resto en "Outras".
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        to    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.CommissionRankingDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/commission-ranking [get]
func (h *AnalyticsHandler) GetCommissionRanking(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	report, err := h.rankingUC.GetCommissionRanking(c.UserContext(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(report)
}

// GetDashboard godoc
// @Summary      Resumen del mes
// @Description  Bruto y comisión vendidos en el mes, top pastas y comisión a recibir por mes de vencimiento.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	summary, err := h.dashboardUC.GetSummary(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(summary)
}
