package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Facturas-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los widgets del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Revenue filas del gráfico de ingresos.
// GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.uc.FetchRevenue(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LatestInvoices las 5 facturas más recientes.
// GET /api/dashboard/latest-invoices
func (h *DashboardHandler) LatestInvoices(c *fiber.Ctx) error {
	out, err := h.uc.FetchLatestInvoices(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cards conteos y totales de las tarjetas.
// GET /api/dashboard/cards
//
// Respuesta: CardDataDTO (number_of_invoices, number_of_customers,
// total_paid_invoices, total_pending_invoices).
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	out, err := h.uc.FetchCardData(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
