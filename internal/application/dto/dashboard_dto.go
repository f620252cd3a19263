package dto

import "github.com/shopspring/decimal"

// RevenueDTO fila del gráfico de ingresos.
type RevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CardDataDTO respuesta de GET /api/dashboard/cards.
// Los totales se suman en centavos y luego se formatean como moneda.
type CardDataDTO struct {
	NumberOfInvoices     int    `json:"number_of_invoices"`
	NumberOfCustomers    int    `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
