package billing

import (
	"context"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// InvoicesPath ruta de la vista de listado de facturas: se invalida tras cada mutación
// y es el destino de la redirección de create/update.
const InvoicesPath = "/dashboard/invoices"

// PathInvalidator señal de invalidación de una vista cacheada, identificada por su ruta.
type PathInvalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
