package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if !validUUID(id) {
		return nil, nil
	}
	const query = `SELECT id, name, email, image_url FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListNames id y nombre de todos los clientes, por nombre ascendente.
func (r *CustomerRepo) ListNames(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListWithTotals clientes que coinciden por nombre o email con su conteo de facturas
// y los totales pendiente/pagado en centavos.
func (r *CustomerRepo) ListWithTotals(ctx context.Context, query string) ([]repository.CustomerTotalsRow, error) {
	const sql = `
		SELECT
		  c.id, c.name, c.email, c.image_url,
		  COUNT(i.id) AS total_invoices,
		  COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0)::bigint AS total_pending,
		  COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0)::bigint AS total_paid
		FROM customers c
		LEFT JOIN invoices i ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		GROUP BY c.id, c.name, c.email, c.image_url
		ORDER BY c.name ASC`
	rows, err := r.q.Query(ctx, sql, containsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("list customers with totals: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerTotalsRow
	for rows.Next() {
		var row repository.CustomerTotalsRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.ImageURL,
			&row.TotalInvoices, &row.TotalPending, &row.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("scan customer totals: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
