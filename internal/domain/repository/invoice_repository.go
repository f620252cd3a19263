package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// InvoiceRow factura unida con los datos de su cliente (lectura para tablas y listados).
type InvoiceRow struct {
	ID            string
	CustomerID    string
	Amount        int64 // centavos
	Status        string
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada método es una sola operación contra el almacén; no hay estado entre llamadas.
type InvoiceRepository interface {
	// Create inserta la factura. Si ID está vacío el adaptador asigna uno.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update modifica customer_id, amount y status de la factura con ese ID.
	// Devuelve domain.ErrNotFound si no existe.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)

	// ListLatest devuelve las últimas `limit` facturas por fecha descendente.
	ListLatest(ctx context.Context, limit int) ([]InvoiceRow, error)
	// ListFiltered filtra por nombre O email del cliente (sin distinguir mayúsculas),
	// ordena por fecha descendente y pagina con limit/offset.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]InvoiceRow, error)
	// CountFiltered cuenta las facturas que coinciden con el mismo filtro de ListFiltered.
	CountFiltered(ctx context.Context, query string) (int, error)

	Count(ctx context.Context) (int, error)
	// SumAmountByStatus suma los centavos de las facturas en ese estado (0 si no hay).
	SumAmountByStatus(ctx context.Context, status string) (int64, error)
}
