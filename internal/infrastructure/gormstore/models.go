package gormstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// UserModel tabla users.
type UserModel struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

func (m UserModel) ToDomain() *entity.User {
	return &entity.User{ID: m.ID, Name: m.Name, Email: m.Email, Password: m.Password}
}

func userFromEntity(u entity.User) UserModel {
	return UserModel{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password}
}

// CustomerModel tabla customers.
type CustomerModel struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null"`
	ImageURL string `gorm:"column:image_url;size:255;not null"`
}

func (CustomerModel) TableName() string { return "customers" }

func (m CustomerModel) ToDomain() *entity.Customer {
	return &entity.Customer{ID: m.ID, Name: m.Name, Email: m.Email, ImageURL: m.ImageURL}
}

func customerFromEntity(c entity.Customer) CustomerModel {
	return CustomerModel{ID: c.ID, Name: c.Name, Email: c.Email, ImageURL: c.ImageURL}
}

// InvoiceModel tabla invoices. Amount en centavos; Date sin hora.
type InvoiceModel struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"type:uuid;not null;index"`
	Amount     int64     `gorm:"type:integer;not null"`
	Status     string    `gorm:"size:255;not null"`
	Date       time.Time `gorm:"type:date;not null;index"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m InvoiceModel) ToDomain() *entity.Invoice {
	return &entity.Invoice{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		Status:     m.Status,
		Date:       m.Date.UTC(),
	}
}

func invoiceFromEntity(inv *entity.Invoice) InvoiceModel {
	return InvoiceModel{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date,
	}
}

// RevenueModel tabla revenue (agregado mensual, solo lectura para la app).
type RevenueModel struct {
	Month   string `gorm:"size:4;uniqueIndex;not null"`
	Revenue int64  `gorm:"type:integer;not null"`
}

func (RevenueModel) TableName() string { return "revenue" }

func (m RevenueModel) ToDomain() *entity.Revenue {
	return &entity.Revenue{Month: m.Month, Revenue: decimal.NewFromInt(m.Revenue)}
}
