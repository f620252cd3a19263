package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.RevenueRepository = (*RevenueRepo)(nil)
)

// UserRepo implementa UserRepository con GORM.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByEmail email exacto; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return m.ToDomain(), nil
}

// RevenueRepo lectura de la tabla revenue.
type RevenueRepo struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepo {
	return &RevenueRepo{db: db}
}

func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	var models []RevenueModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	list := make([]*entity.Revenue, 0, len(models))
	for _, m := range models {
		list = append(list, m.ToDomain())
	}
	return list, nil
}
