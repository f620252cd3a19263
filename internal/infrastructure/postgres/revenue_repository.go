package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo lectura de la tabla revenue.
type RevenueRepo struct {
	q Querier
}

func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// List todas las filas, sin transformar. revenue se lee como NUMERIC (codec decimal del pool).
func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	rows, err := r.q.Query(ctx, `SELECT month, revenue::numeric FROM revenue`)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}
