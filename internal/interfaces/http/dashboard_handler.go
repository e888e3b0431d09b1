package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/analytics"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
)

// DashboardHandler métricas y reportes (protegido, admin/manager).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Métricas agregadas del negocio
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revenue godoc
// @Summary      Serie de ingresos diarios para la gráfica del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás (default 7)"
// @Success      200   {array}  dto.RevenuePointDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	out, err := h.uc.RevenueChart(c.Context(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Reporte de ventas por rango de fechas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200   {array}  dto.SalesReportRowDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (YYYY-MM-DD)"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (YYYY-MM-DD)"})
	}
	// El límite superior cubre el día completo
	to = to.Add(24*time.Hour - time.Nanosecond)
	out, err := h.uc.SalesReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
