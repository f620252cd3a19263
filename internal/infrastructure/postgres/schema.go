package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/seed"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Seed inserta el dataset; las filas que ya existen se dejan como están.
// Los passwords del dataset deben venir ya hasheados.
func Seed(ctx context.Context, q Querier, ds seed.Dataset) error {
	for _, u := range ds.Users {
		if _, err := q.Exec(ctx, `
			INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.Email, u.Password); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	for _, c := range ds.Customers {
		if _, err := q.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email, c.ImageURL); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
	}
	for _, inv := range ds.Invoices {
		if _, err := q.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date); err != nil {
			return fmt.Errorf("seed invoice %s: %w", inv.ID, err)
		}
	}
	for _, rev := range ds.Revenue {
		if _, err := q.Exec(ctx, `
			INSERT INTO revenue (month, revenue) VALUES ($1, $2)
			ON CONFLICT (month) DO NOTHING`,
			rev.Month, rev.Revenue.IntPart()); err != nil {
			return fmt.Errorf("seed revenue %s: %w", rev.Month, err)
		}
	}
	return nil
}
