package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Facturas-dashboard/internal/application/analytics"
	"github.com/jhoicas/Facturas-dashboard/internal/application/auth"
	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/gormstore"
	infrapdf "github.com/jhoicas/Facturas-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/revalidate"
	httpRouter "github.com/jhoicas/Facturas-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Facturas-dashboard/pkg/config"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

// repositories puertos de persistencia, resueltos según DB_DRIVER.
type repositories struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	revenue   repository.RevenueRepository
	close     func()
}

func openRepositories(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*repositories, error) {
	if cfg.Driver == config.DriverGORM {
		db, err := gormstore.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:     gormstore.NewUserRepository(db),
			customers: gormstore.NewCustomerRepository(db),
			invoices:  gormstore.NewInvoiceRepository(db),
			revenue:   gormstore.NewRevenueRepository(db),
			close: func() {
				if err := gormstore.Close(db); err != nil {
					log.Error().Err(err).Msg("cerrar conexión gorm")
				}
			},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &repositories{
		users:     postgres.NewUserRepository(pool),
		customers: postgres.NewCustomerRepository(pool),
		invoices:  postgres.NewInvoiceRepository(pool),
		revenue:   postgres.NewRevenueRepository(pool),
		close:     pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: no se podrán emitir sesiones")
	}

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer repos.close()

	// Invalidación de vistas: Redis Pub/Sub si está configurado; si no, solo log.
	var invalidator billing.PathInvalidator = revalidate.NewLogInvalidator(log)
	if cfg.Redis.Enabled() {
		rdb, err := revalidate.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		invalidator = revalidate.NewRedisInvalidator(rdb, cfg.Redis.Channel, log)
	}

	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	dashboardUC := appanalytics.NewDashboardUseCase(repos.invoices, repos.customers, repos.revenue, log)
	invoiceActions := billing.NewInvoiceActions(repos.invoices, invalidator, log)
	invoiceQueries := billing.NewInvoiceQueries(repos.invoices, log)
	customerUC := billing.NewCustomerUseCase(repos.customers, log)
	invoicePDFUC := billing.NewPDFUseCase(
		repos.invoices, repos.customers, infrapdf.NewMarotoPDFGenerator(cfg.App.Name), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturas Dashboard API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		InvoiceActs:  invoiceActions,
		InvoiceQry:   invoiceQueries,
		CustomerUC:   customerUC,
		PDFUC:        invoicePDFUC,
		JWTSecret:    cfg.JWT.Secret,
		SessionTTL:   time.Duration(cfg.JWT.Expiration) * time.Minute,
		SecureCookie: cfg.App.Env == "production",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
