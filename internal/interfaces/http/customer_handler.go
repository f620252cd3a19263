package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
)

// CustomerHandler maneja las consultas de clientes (protegido).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List id y nombre de todos los clientes (selector del formulario).
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FetchCustomers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Table clientes filtrados con sus totales.
// GET /api/customers/table?query=
func (h *CustomerHandler) Table(c *fiber.Ctx) error {
	out, err := h.uc.FetchFilteredCustomers(c.Context(), c.Query("query"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
