package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/papeleria-app/papeleria-api/internal/application/analytics"
)

// DashboardHandler agregados de solo lectura para el dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Conteos del resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err, "recurso no encontrado")
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Últimos productos creados
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RecentProductsResponse
// @Router       /api/dashboard/recent [get]
func (h *DashboardHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.Context())
	if err != nil {
		return respondError(c, err, "recurso no encontrado")
	}
	return c.JSON(out)
}

// StockOverview godoc
// @Summary      Stock total agrupado por categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockOverviewResponse
// @Router       /api/dashboard/stock-overview [get]
func (h *DashboardHandler) StockOverview(c *fiber.Ctx) error {
	out, err := h.uc.StockOverview(c.Context())
	if err != nil {
		return respondError(c, err, "recurso no encontrado")
	}
	return c.JSON(out)
}
