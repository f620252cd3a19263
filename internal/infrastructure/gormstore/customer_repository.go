package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementa CustomerRepository con GORM.
type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if !validUUID(id) {
		return nil, nil
	}
	var m CustomerModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *CustomerRepo) ListNames(ctx context.Context) ([]*entity.Customer, error) {
	var models []CustomerModel
	if err := r.db.WithContext(ctx).Select("id", "name").Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list := make([]*entity.Customer, 0, len(models))
	for _, m := range models {
		list = append(list, &entity.Customer{ID: m.ID, Name: m.Name})
	}
	return list, nil
}

// ListWithTotals agrega por cliente el número de facturas y los montos por estado.
func (r *CustomerRepo) ListWithTotals(ctx context.Context, query string) ([]repository.CustomerTotalsRow, error) {
	p := containsPattern(query)
	var rows []repository.CustomerTotalsRow
	err := r.db.WithContext(ctx).
		Table("customers AS c").
		Select(`c.id, c.name, c.email, c.image_url,
			COUNT(i.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid`).
		Joins("LEFT JOIN invoices AS i ON c.id = i.customer_id").
		Where(customerFilter, p, p).
		Group("c.id, c.name, c.email, c.image_url").
		Order("c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list customers with totals: %w", err)
	}
	return rows, nil
}

func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&CustomerModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return int(n), nil
}
