package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/homeexotica-crm/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve contadores, ingresos del mes, seguimientos de hoy y leads recientes.
// GET /api/dashboard/summary
//
// Un contador que falla no tumba la respuesta: queda en 0 y su error va en "errors".
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
