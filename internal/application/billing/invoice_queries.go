package billing

import (
	"context"

	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
	"github.com/jhoicas/Facturas-dashboard/pkg/money"
)

// ItemsPerPage tamaño fijo de página de la tabla de facturas.
const ItemsPerPage = 6

// InvoiceQueries consultas de lectura de facturas para la tabla y el formulario de edición.
type InvoiceQueries struct {
	invoices repository.InvoiceRepository
	log      *logger.Logger
}

// NewInvoiceQueries construye las consultas.
func NewInvoiceQueries(invoices repository.InvoiceRepository, log *logger.Logger) *InvoiceQueries {
	return &InvoiceQueries{invoices: invoices, log: log.Component("invoice_queries")}
}

// FetchFilteredInvoices devuelve la página `page` (desde 1) de facturas cuyo cliente
// coincide por nombre o email con query. Como máximo ItemsPerPage filas.
func (uc *InvoiceQueries) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]dto.InvoiceTableRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage

	rows, err := uc.invoices.ListFiltered(ctx, query, ItemsPerPage, offset)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchFilteredInvoices").Msg("error de base de datos")
		return nil, domain.ErrFetchInvoices
	}

	out := make([]dto.InvoiceTableRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InvoiceTableRow{
			ID:              r.ID,
			CustomerID:      r.CustomerID,
			Name:            r.CustomerName,
			Email:           r.CustomerEmail,
			ImageURL:        r.ImageURL,
			Date:            r.Date.Format(entity.DateLayout),
			Amount:          r.Amount,
			AmountFormatted: money.FormatCurrency(r.Amount),
			Status:          r.Status,
		})
	}
	return out, nil
}

// FetchInvoicesPages número total de páginas: ceil(facturas que coinciden / ItemsPerPage).
func (uc *InvoiceQueries) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := uc.invoices.CountFiltered(ctx, query)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchInvoicesPages").Msg("error de base de datos")
		return 0, domain.ErrFetchInvoicesPages
	}
	return TotalPages(count), nil
}

// FetchInvoiceByID devuelve la factura para el formulario de edición con el monto en
// dólares (centavos / 100). Devuelve (nil, nil) si no existe.
func (uc *InvoiceQueries) FetchInvoiceByID(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchInvoiceById").Str("invoice_id", id).Msg("error de base de datos")
		return nil, domain.ErrFetchInvoice
	}
	if inv == nil {
		return nil, nil
	}
	return &dto.InvoiceFormDTO{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.FromCents(inv.Amount),
		Status:     inv.Status,
		Date:       inv.Date.Format(entity.DateLayout),
	}, nil
}

// TotalPages ceil(count / ItemsPerPage).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + ItemsPerPage - 1) / ItemsPerPage
}
