package dto

import "github.com/shopspring/decimal"

// InvoiceFormInput campos crudos del formulario de factura, tal como llegan (strings).
// Acepta form-urlencoded y JSON con los mismos nombres.
type InvoiceFormInput struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// ActionState resultado de una acción fallida: errores por campo y/o mensaje.
// Nil significa éxito.
type ActionState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// ActionResult salida de create/update: State != nil si falló; si no, RedirectTo indica
// la vista a la que se transfiere el control.
type ActionResult struct {
	State      *ActionState `json:"state,omitempty"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

// Succeeded indica si la acción terminó sin errores.
func (r ActionResult) Succeeded() bool { return r.State == nil }

// LatestInvoiceDTO fila del widget "últimas facturas".
type LatestInvoiceDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"` // moneda formateada
}

// InvoiceTableRow fila de la tabla paginada de facturas.
type InvoiceTableRow struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url"`
	Date            string `json:"date"`
	Amount          int64  `json:"amount"` // centavos
	AmountFormatted string `json:"amount_formatted"`
	Status          string `json:"status"`
}

// InvoiceFormDTO factura para pre-poblar el formulario de edición (monto en dólares).
type InvoiceFormDTO struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}

// InvoicesPageResponse respuesta de GET /api/invoices.
type InvoicesPageResponse struct {
	Invoices []InvoiceTableRow `json:"invoices"`
	Page     int               `json:"page"`
}

// InvoicesPagesResponse respuesta de GET /api/invoices/pages.
type InvoicesPagesResponse struct {
	TotalPages int `json:"total_pages"`
}
