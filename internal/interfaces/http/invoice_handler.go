package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
)

// InvoiceHandler maneja la tabla, el formulario y las acciones de facturas (protegido).
type InvoiceHandler struct {
	actions *billing.InvoiceActions
	queries *billing.InvoiceQueries
	pdf     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(actions *billing.InvoiceActions, queries *billing.InvoiceQueries, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{actions: actions, queries: queries, pdf: pdf}
}

// List página de la tabla de facturas.
// GET /api/invoices?query=&page=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	rows, err := h.queries.FetchFilteredInvoices(c.Context(), c.Query("query"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.InvoicesPageResponse{Invoices: rows, Page: page})
}

// Pages total de páginas para el paginador.
// GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *fiber.Ctx) error {
	total, err := h.queries.FetchInvoicesPages(c.Context(), c.Query("query"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.InvoicesPagesResponse{TotalPages: total})
}

// GetByID factura para el formulario de edición.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.queries.FetchInvoiceByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(inv)
}

// PDF descarga el comprobante de la factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	doc, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}

// Create acción del formulario de alta.
// POST /api/invoices → 303 al listado, o 422 con el estado del formulario.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceFormInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return actionResponse(c, h.actions.CreateInvoice(c.Context(), in))
}

// Update acción del formulario de edición; el id sale de la ruta.
// PUT|POST /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceFormInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return actionResponse(c, h.actions.UpdateInvoice(c.Context(), c.Params("id"), in))
}

// Delete DELETE /api/invoices/:id → 204, o 500 con el estado.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if state := h.actions.DeleteInvoice(c.Context(), c.Params("id")); state != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(state)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// actionResponse éxito → redirección 303; errores de campo → 422; fallo de persistencia → 500.
func actionResponse(c *fiber.Ctx, res dto.ActionResult) error {
	if res.Succeeded() {
		return c.Redirect(res.RedirectTo, fiber.StatusSeeOther)
	}
	if len(res.State.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res.State)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(res.State)
}
