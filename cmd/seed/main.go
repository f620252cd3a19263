// seed crea el esquema y carga los datos de ejemplo (usuarios, clientes, facturas e ingresos).
// Es idempotente: las filas existentes no se tocan.
//
// Uso: go run ./cmd/seed
// Respeta DB_DRIVER (pgx o gorm) y la misma configuración que la API.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/gormstore"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/seed"
	"github.com/jhoicas/Facturas-dashboard/pkg/config"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ds, err := seed.HashPasswords(seed.Placeholder(), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de passwords")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cfg.DB.Driver {
	case config.DriverGORM:
		err = seedGORM(ctx, cfg.DB, ds)
	default:
		err = seedPGX(ctx, cfg.DB, ds)
	}
	if err != nil {
		log.Fatal().Err(err).Str("db_driver", cfg.DB.Driver).Msg("seed")
	}
	log.Info().
		Int("users", len(ds.Users)).
		Int("customers", len(ds.Customers)).
		Int("invoices", len(ds.Invoices)).
		Int("revenue", len(ds.Revenue)).
		Msg("datos de ejemplo cargados")
}

func seedPGX(ctx context.Context, cfg config.DBConfig, ds seed.Dataset) error {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	// Esquema y datos en una sola transacción: o queda todo o nada.
	return postgres.NewTxRunner(pool).Run(ctx, func(q postgres.Querier) error {
		if err := postgres.EnsureSchema(ctx, q); err != nil {
			return err
		}
		return postgres.Seed(ctx, q, ds)
	})
}

func seedGORM(ctx context.Context, cfg config.DBConfig, ds seed.Dataset) error {
	db, err := gormstore.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = gormstore.Close(db) }()
	if err := gormstore.Migrate(db); err != nil {
		return err
	}
	return gormstore.Seed(ctx, db, ds)
}
