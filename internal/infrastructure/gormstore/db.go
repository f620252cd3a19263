// Package gormstore implementa los puertos de repositorio sobre GORM.
// Es el backend alternativo (DB_DRIVER=gorm) al adaptador pgx de internal/infrastructure/postgres;
// ambos cumplen los mismos contratos.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/seed"
	"github.com/jhoicas/Facturas-dashboard/pkg/config"
)

// Open conecta a PostgreSQL vía GORM con la configuración de la app.
func Open(ctx context.Context, cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.ConnectionString()), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("conectar gorm: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// Close cierra la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate crea o ajusta las cuatro tablas a partir de los modelos.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &CustomerModel{}, &InvoiceModel{}, &RevenueModel{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Seed inserta el dataset ignorando las filas que ya existen.
// Los passwords del dataset deben venir ya hasheados.
func Seed(ctx context.Context, db *gorm.DB, ds seed.Dataset) error {
	insert := func(v any) error {
		return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(v).Error
	}
	for _, u := range ds.Users {
		m := userFromEntity(u)
		if err := insert(&m); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	for _, c := range ds.Customers {
		m := customerFromEntity(c)
		if err := insert(&m); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
	}
	for _, inv := range ds.Invoices {
		m := invoiceFromEntity(&inv)
		if err := insert(&m); err != nil {
			return fmt.Errorf("seed invoice %s: %w", inv.ID, err)
		}
	}
	for _, rev := range ds.Revenue {
		m := RevenueModel{Month: rev.Month, Revenue: rev.Revenue.IntPart()}
		if err := insert(&m); err != nil {
			return fmt.Errorf("seed revenue %s: %w", rev.Month, err)
		}
	}
	return nil
}

// containsPattern patrón LIKE de subcadena en minúsculas, con comodines escapados ('\').
func containsPattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(query)) + "%"
}

// customerFilter nombre O email, sin distinguir mayúsculas; portable entre PostgreSQL y SQLite.
const customerFilter = `LOWER(c.name) LIKE ? ESCAPE '\' OR LOWER(c.email) LIKE ? ESCAPE '\'`

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
