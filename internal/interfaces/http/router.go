package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Facturas-dashboard/internal/application/analytics"
	"github.com/jhoicas/Facturas-dashboard/internal/application/auth"
	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	InvoiceActs  *billing.InvoiceActions
	InvoiceQry   *billing.InvoiceQueries
	CustomerUC   *billing.CustomerUseCase
	PDFUC        *billing.PDFUseCase
	JWTSecret    string
	SessionTTL   time.Duration
	SecureCookie bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL, deps.SecureCookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (cookie de sesión o Bearer Token). El middleware se monta por
	// grupo: una ruta /api/* inexistente responde 404, no 401.
	requireSession := AuthMiddleware(deps.JWTSecret)

	dashboard := api.Group("/dashboard", requireSession)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/revenue", dashboardHandler.Revenue)
	dashboard.Get("/latest-invoices", dashboardHandler.LatestInvoices)
	dashboard.Get("/cards", dashboardHandler.Cards)

	invoices := api.Group("/invoices", requireSession)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceActs, deps.InvoiceQry, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/pages", invoiceHandler.Pages)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	customers := api.Group("/customers", requireSession)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/table", customerHandler.Table)
}
