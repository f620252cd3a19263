package entity

import "time"

// Estados válidos de una factura.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// DateLayout formato de fecha de calendario de las facturas (ISO 8601, sin hora).
const DateLayout = "2006-01-02"

// Invoice representa una factura. Amount se guarda en centavos.
// ID y Date no cambian después de crearse.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     string
	Date       time.Time
}

// ValidInvoiceStatus indica si s es un estado de factura permitido.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}
