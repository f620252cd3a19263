package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceRowColumns = `
	i.id, i.customer_id, i.amount, i.status, i.date,
	c.name, c.email, c.image_url`

const invoiceFilter = `c.name ILIKE $1 OR c.email ILIKE $1`

// Create inserta la factura. Asigna un UUID si no trae ID.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice id already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update modifica customer_id, amount y status. El id y la fecha no cambian.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if !validUUID(invoice.ID) {
		return domain.ErrNotFound
	}
	const query = `
		UPDATE invoices
		SET customer_id = $2,
		    amount      = $3,
		    status      = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura. Borrar un id inexistente no es error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !validUUID(id) {
		return nil, nil
	}
	const query = `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListLatest últimas facturas por fecha descendente, con los datos del cliente.
func (r *InvoiceRepo) ListLatest(ctx context.Context, limit int) ([]repository.InvoiceRow, error) {
	query := `
		SELECT ` + invoiceRowColumns + `
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		ORDER BY i.date DESC, i.id
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest invoices: %w", err)
	}
	return collectInvoiceRows(rows)
}

// ListFiltered facturas cuyo cliente coincide por nombre o email, paginadas.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]repository.InvoiceRow, error) {
	sql := `
		SELECT ` + invoiceRowColumns + `
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE ` + invoiceFilter + `
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, containsPattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list filtered invoices: %w", err)
	}
	return collectInvoiceRows(rows)
}

// CountFiltered cuenta con el mismo filtro de ListFiltered.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		WHERE ` + invoiceFilter
	var n int
	if err := r.q.QueryRow(ctx, sql, containsPattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count filtered invoices: %w", err)
	}
	return n, nil
}

func (r *InvoiceRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// SumAmountByStatus suma en centavos; 0 si no hay facturas en ese estado.
func (r *InvoiceRepo) SumAmountByStatus(ctx context.Context, status string) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0)::bigint FROM invoices WHERE status = $1`
	var total int64
	if err := r.q.QueryRow(ctx, query, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum invoices by status: %w", err)
	}
	return total, nil
}

func collectInvoiceRows(rows pgx.Rows) ([]repository.InvoiceRow, error) {
	defer rows.Close()
	var list []repository.InvoiceRow
	for rows.Next() {
		var row repository.InvoiceRow
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &row.Status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// validUUID evita el error de cast de PostgreSQL para ids mal formados (se tratan como inexistentes).
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
