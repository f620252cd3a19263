package repository

import (
	"context"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// RevenueRepository lectura del agregado de ingresos.
type RevenueRepository interface {
	List(ctx context.Context) ([]*entity.Revenue, error)
}
