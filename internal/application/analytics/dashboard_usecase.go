// Package analytics contiene las consultas de las tarjetas y widgets del dashboard.
package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
	"github.com/jhoicas/Facturas-dashboard/pkg/money"
)

const latestInvoicesLimit = 5 // filas del widget "últimas facturas"

// DashboardUseCase genera los datos del dashboard.
//
// Fuente de datos: repositorios read-only; no guarda estado entre llamadas.
type DashboardUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	revenueRepo  repository.RevenueRepository
	log          *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		log:          log.Component("dashboard"),
	}
}

// FetchRevenue devuelve todas las filas del agregado de ingresos, sin transformar.
func (uc *DashboardUseCase) FetchRevenue(ctx context.Context) ([]dto.RevenueDTO, error) {
	list, err := uc.revenueRepo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchRevenue").Msg("error de base de datos")
		return nil, domain.ErrFetchRevenue
	}
	out := make([]dto.RevenueDTO, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RevenueDTO{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}

// FetchLatestInvoices las 5 facturas más recientes con los datos de su cliente y el
// monto formateado como moneda.
func (uc *DashboardUseCase) FetchLatestInvoices(ctx context.Context) ([]dto.LatestInvoiceDTO, error) {
	rows, err := uc.invoiceRepo.ListLatest(ctx, latestInvoicesLimit)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "fetchLatestInvoices").Msg("error de base de datos")
		return nil, domain.ErrFetchLatestInvoices
	}
	out := make([]dto.LatestInvoiceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LatestInvoiceDTO{
			ID:       r.ID,
			Name:     r.CustomerName,
			Email:    r.CustomerEmail,
			ImageURL: r.ImageURL,
			Amount:   money.FormatCurrency(r.Amount),
		})
	}
	return out, nil
}

// FetchCardData construye las tarjetas del dashboard.
//
// Cuatro lecturas independientes en paralelo:
//  1. Count de facturas
//  2. Count de clientes
//  3. Suma de facturas pagadas (centavos)
//  4. Suma de facturas pendientes (centavos)
//
// Si cualquiera falla, falla todo el agregado (no hay resultados parciales).
func (uc *DashboardUseCase) FetchCardData(ctx context.Context) (*dto.CardDataDTO, error) {
	var (
		numInvoices, numCustomers int
		totalPaid, totalPending   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		numInvoices, err = uc.invoiceRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		numCustomers, err = uc.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalPaid, err = uc.invoiceRepo.SumAmountByStatus(gctx, entity.InvoiceStatusPaid)
		return err
	})
	g.Go(func() (err error) {
		totalPending, err = uc.invoiceRepo.SumAmountByStatus(gctx, entity.InvoiceStatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.log.Error().Err(err).Str("op", "fetchCardData").Msg("error de base de datos")
		return nil, domain.ErrFetchCardData
	}

	return &dto.CardDataDTO{
		NumberOfInvoices:     numInvoices,
		NumberOfCustomers:    numCustomers,
		TotalPaidInvoices:    money.FormatCurrency(totalPaid),
		TotalPendingInvoices: money.FormatCurrency(totalPending),
	}, nil
}
