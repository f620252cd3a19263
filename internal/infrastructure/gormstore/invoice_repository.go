package gormstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementa InvoiceRepository con GORM.
type InvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

const invoiceRowSelect = `i.id, i.customer_id, i.amount, i.status, i.date,
	c.name AS customer_name, c.email AS customer_email, c.image_url`

func (r *InvoiceRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices AS i").
		Joins("JOIN customers AS c ON i.customer_id = c.id")
}

// Create inserta la factura; asigna un UUID si no trae ID.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	m := invoiceFromEntity(invoice)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update modifica customer_id, amount y status. domain.ErrNotFound si no existe.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if !validUUID(invoice.ID) {
		return domain.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&InvoiceModel{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]any{
			"customer_id": invoice.CustomerID,
			"amount":      invoice.Amount,
			"status":      invoice.Status,
		})
	if res.Error != nil {
		return fmt.Errorf("update invoice: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura; un id inexistente no es error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if !validUUID(id) {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&InvoiceModel{}).Error; err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !validUUID(id) {
		return nil, nil
	}
	var m InvoiceModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *InvoiceRepo) ListLatest(ctx context.Context, limit int) ([]repository.InvoiceRow, error) {
	var rows []repository.InvoiceRow
	err := r.joined(ctx).
		Select(invoiceRowSelect).
		Order("i.date DESC, i.id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list latest invoices: %w", err)
	}
	return normalizeDates(rows), nil
}

func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]repository.InvoiceRow, error) {
	p := containsPattern(query)
	var rows []repository.InvoiceRow
	err := r.joined(ctx).
		Select(invoiceRowSelect).
		Where(customerFilter, p, p).
		Order("i.date DESC, i.id").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list filtered invoices: %w", err)
	}
	return normalizeDates(rows), nil
}

func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	p := containsPattern(query)
	var n int64
	if err := r.joined(ctx).Where(customerFilter, p, p).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count filtered invoices: %w", err)
	}
	return int(n), nil
}

func (r *InvoiceRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&InvoiceModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return int(n), nil
}

func (r *InvoiceRepo) SumAmountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&InvoiceModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status).
		Row().Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum invoices by status: %w", err)
	}
	return total, nil
}

func normalizeDates(rows []repository.InvoiceRow) []repository.InvoiceRow {
	for i := range rows {
		rows[i].Date = rows[i].Date.UTC()
	}
	return rows
}
