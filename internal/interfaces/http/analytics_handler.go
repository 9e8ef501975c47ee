package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-stock/internal/application/analytics"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
)

const maxTopProducts = 100

// AnalyticsHandler maneja los endpoints de analítica por categoría y ranking de valor.
type AnalyticsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetCategories godoc
// @Summary      Resumen por categoría
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  dto.CategoryStatDTO
// @Router       /api/analytics/categories [get]
func (h *AnalyticsHandler) GetCategories(c *fiber.Ctx) error {
	out, err := h.uc.CategoryStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetTopProducts godoc
// @Summary      Productos de mayor valor en inventario
// @Tags         analytics
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (default 5, max 100)"
// @Success      200    {array}  dto.TopProductDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/analytics/top-products [get]
func (h *AnalyticsHandler) GetTopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 || limit > maxTopProducts {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "limit debe estar entre 1 y 100", Fields: []string{"limit"},
		})
	}
	out, err := h.uc.TopProducts(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
