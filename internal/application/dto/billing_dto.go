package dto

// CustomerField cliente para poblar un selector (id + nombre).
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerTableRow cliente con totales formateados para la tabla de clientes.
type CustomerTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
