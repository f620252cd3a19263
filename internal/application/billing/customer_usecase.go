package billing

import (
	"context"

	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
	"github.com/jhoicas/Facturas-dashboard/pkg/money"
)

// CustomerUseCase consultas de clientes (selector del formulario y tabla de clientes).
type CustomerUseCase struct {
	repo repository.CustomerRepository
	log  *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, log: log.Component("customers")}
}

// FetchCustomers id y nombre de todos los clientes, en orden alfabético.
func (uc *CustomerUseCase) FetchCustomers(ctx context.Context) ([]dto.CustomerField, error) {
	list, err := uc.repo.ListNames(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchCustomers").Msg("error de base de datos")
		return nil, domain.ErrFetchCustomers
	}
	out := make([]dto.CustomerField, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerField{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// FetchFilteredCustomers clientes que coinciden por nombre o email, con el total de
// facturas y los montos pendiente/pagado formateados.
func (uc *CustomerUseCase) FetchFilteredCustomers(ctx context.Context, query string) ([]dto.CustomerTableRow, error) {
	rows, err := uc.repo.ListWithTotals(ctx, query)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchFilteredCustomers").Msg("error de base de datos")
		return nil, domain.ErrFetchCustomerTable
	}
	out := make([]dto.CustomerTableRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CustomerTableRow{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  money.FormatCurrency(r.TotalPending),
			TotalPaid:     money.FormatCurrency(r.TotalPaid),
		})
	}
	return out, nil
}
