package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

func TestFetchCustomers(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*entity.Customer{amy, delba, lee}}
	uc := billing.NewCustomerUseCase(repo, logger.Nop())

	got, err := uc.FetchCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.CustomerField{
		{ID: "c3", Name: "Amy Burns"},
		{ID: "c2", Name: "Delba de Oliveira"},
		{ID: "c1", Name: "Lee Robinson"},
	}, got)
}

func TestFetchCustomers_ErrorGenerico(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerRepo{err: errDB}, logger.Nop())

	got, err := uc.FetchCustomers(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrFetchCustomers)
}

func TestFetchFilteredCustomers_FormateaTotales(t *testing.T) {
	repo := &fakeCustomerRepo{totals: []repository.CustomerTotalsRow{
		{ID: "c1", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png",
			TotalInvoices: 3, TotalPending: 123450, TotalPaid: 0},
	}}
	uc := billing.NewCustomerUseCase(repo, logger.Nop())

	got, err := uc.FetchFilteredCustomers(context.Background(), "lee")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dto.CustomerTableRow{
		ID: "c1", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png",
		TotalInvoices: 3, TotalPending: "$1,234.50", TotalPaid: "$0.00",
	}, got[0])
}

func TestFetchFilteredCustomers_ErrorGenerico(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerRepo{err: errDB}, logger.Nop())

	_, err := uc.FetchFilteredCustomers(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrFetchCustomerTable)
}
