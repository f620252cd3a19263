package repository

import (
	"context"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// CustomerTotalsRow cliente con sus totales de facturación agregados.
type CustomerTotalsRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  int64 // centavos
	TotalPaid     int64 // centavos
}

// CustomerRepository define el puerto de persistencia (solo lectura) para Customer.
type CustomerRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// ListNames devuelve id y nombre de todos los clientes, ordenados por nombre.
	ListNames(ctx context.Context) ([]*entity.Customer, error)
	// ListWithTotals filtra por nombre O email y agrega conteo y totales por estado.
	ListWithTotals(ctx context.Context, query string) ([]CustomerTotalsRow, error)
	Count(ctx context.Context) (int, error)
}
