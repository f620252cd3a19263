package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appanalytics "github.com/jhoicas/Facturas-dashboard/internal/application/analytics"
	"github.com/jhoicas/Facturas-dashboard/internal/application/auth"
	"github.com/jhoicas/Facturas-dashboard/internal/application/billing"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/gormstore"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/revalidate"
	"github.com/jhoicas/Facturas-dashboard/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/Facturas-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stack completo sobre sqlite en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app   *fiber.App
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormstore.Migrate(db))
	ds, err := seed.HashPasswords(seed.Placeholder(), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, gormstore.Seed(context.Background(), db, ds))

	log := logger.Nop()
	invoiceRepo := gormstore.NewInvoiceRepository(db)
	customerRepo := gormstore.NewCustomerRepository(db)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(gormstore.NewUserRepository(db), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}, log),
		DashboardUC: appanalytics.NewDashboardUseCase(invoiceRepo, customerRepo, gormstore.NewRevenueRepository(db), log),
		InvoiceActs: billing.NewInvoiceActions(invoiceRepo, revalidate.NewLogInvalidator(log), log),
		InvoiceQry:  billing.NewInvoiceQueries(invoiceRepo, log),
		CustomerUC:  billing.NewCustomerUseCase(customerRepo, log),
		PDFUC:       billing.NewPDFUseCase(invoiceRepo, customerRepo, pdf.NewMarotoPDFGenerator("Acme"), log),
		JWTSecret:   testJWTSecret,
		SessionTTL:  time.Hour,
	})
	return &testServer{app: app, token: sessionToken(t, testJWTSecret)}
}

// do lanza una petición autenticada con Bearer; body puede ser nil.
func (s *testServer) do(t *testing.T, method, target string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (s *testServer) getJSON(t *testing.T, target string, out any) {
	t.Helper()
	resp := s.do(t, http.MethodGet, target, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func form(values url.Values) io.Reader { return strings.NewReader(values.Encode()) }

const formContentType = "application/x-www-form-urlencoded"

// ──────────────────────────────────────────────────────────────────────────────
// Rutas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_CredencialesValidasEmiteCookie(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"user@nextmail.com","password":"123456"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var session struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, seed.UserEmail, session.User.Email)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "debe emitirse la cookie de sesión")
	assert.Equal(t, session.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// La cookie basta para entrar a rutas protegidas.
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/cards", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cookie.Value})
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_Fallidos(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"password incorrecto", `{"email":"user@nextmail.com","password":"999999"}`},
		{"usuario inexistente", `{"email":"nadie@nextmail.com","password":"123456"}`},
		{"password corto", `{"email":"user@nextmail.com","password":"123"}`},
		{"email inválido", `{"email":"no-es-email","password":"123456"}`},
	}
	s := newTestServer(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
			resp, err := s.app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, auth.MsgInvalidCredentials, decodeBody(t, resp)["message"])
		})
	}
}

func TestLogout_BorraCookie(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			found = true
			assert.Empty(t, c.Value)
		}
	}
	assert.True(t, found)
}

func TestRutasProtegidas_SinSesion401(t *testing.T) {
	s := newTestServer(t)
	for _, target := range []string{"/api/dashboard/revenue", "/api/invoices", "/api/customers"} {
		resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestRutaInexistente404(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/no-existe", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/no-existe", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard(t *testing.T) {
	s := newTestServer(t)

	var revenue []map[string]any
	s.getJSON(t, "/api/dashboard/revenue", &revenue)
	assert.Len(t, revenue, 12)

	var latest []map[string]any
	s.getJSON(t, "/api/dashboard/latest-invoices", &latest)
	require.Len(t, latest, 5)
	assert.Equal(t, "Michael Novotny", latest[0]["name"])
	assert.Equal(t, "$448.00", latest[0]["amount"])

	var cards map[string]any
	s.getJSON(t, "/api/dashboard/cards", &cards)
	assert.EqualValues(t, 13, cards["number_of_invoices"])
	assert.EqualValues(t, 6, cards["number_of_customers"])
	assert.Equal(t, "$1,006.26", cards["total_paid_invoices"])
	assert.Equal(t, "$1,256.32", cards["total_pending_invoices"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_ListadoYPaginas(t *testing.T) {
	s := newTestServer(t)

	var page struct {
		Invoices []map[string]any `json:"invoices"`
		Page     int              `json:"page"`
	}
	s.getJSON(t, "/api/invoices", &page)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Invoices, billing.ItemsPerPage)

	s.getJSON(t, "/api/invoices?query=burns", &page)
	assert.Len(t, page.Invoices, 2)

	s.getJSON(t, "/api/invoices?page=3", &page)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Invoices, 1)

	var pages struct {
		TotalPages int `json:"total_pages"`
	}
	s.getJSON(t, "/api/invoices/pages", &pages)
	assert.Equal(t, 3, pages.TotalPages)
	s.getJSON(t, "/api/invoices/pages?query=zzz", &pages)
	assert.Equal(t, 0, pages.TotalPages)
}

func TestInvoices_GetByID(t *testing.T) {
	s := newTestServer(t)

	var inv map[string]any
	s.getJSON(t, "/api/invoices/"+seed.InvoiceID(0), &inv)
	assert.Equal(t, seed.EvilRabbitID, inv["customer_id"])
	assert.Equal(t, "157.95", inv["amount"])
	assert.Equal(t, "pending", inv["status"])

	resp := s.do(t, http.MethodGet, "/api/invoices/00000000-0000-0000-0000-00000000dead", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = s.do(t, http.MethodGet, "/api/invoices/no-es-uuid", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoices_PDF(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/invoices/"+seed.InvoiceID(3)+"/pdf", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura-"+seed.InvoiceID(3)+".pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))

	resp = s.do(t, http.MethodGet, "/api/invoices/00000000-0000-0000-0000-00000000dead/pdf", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoices_CreateRedirige(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/invoices", form(url.Values{
		"customerId": {seed.AmyBurnsID},
		"amount":     {"12.50"},
		"status":     {"pending"},
	}), formContentType)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, billing.InvoicesPath, resp.Header.Get("Location"))

	var cards map[string]any
	s.getJSON(t, "/api/dashboard/cards", &cards)
	assert.EqualValues(t, 14, cards["number_of_invoices"])
	assert.Equal(t, "$1,268.82", cards["total_pending_invoices"])
}

func TestInvoices_CreateJSON(t *testing.T) {
	s := newTestServer(t)
	body := `{"customerId":"` + seed.LeeRobinsonID + `","amount":"1","status":"paid"}`
	resp := s.do(t, http.MethodPost, "/api/invoices", strings.NewReader(body), fiber.MIMEApplicationJSON)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestInvoices_CreateInvalido422(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/invoices", form(url.Values{
		"amount": {"0"},
		"status": {"overdue"},
	}), formContentType)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var state struct {
		Errors  map[string][]string `json:"errors"`
		Message string              `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, billing.MsgCreateMissingFields, state.Message)
	assert.Contains(t, state.Errors, "customer_id")
	assert.Contains(t, state.Errors, "amount")
	assert.Contains(t, state.Errors, "status")
}

func TestInvoices_CreateMontoFueraDeRango422(t *testing.T) {
	s := newTestServer(t)
	for _, amount := range []string{"0.004", "1e30"} {
		resp := s.do(t, http.MethodPost, "/api/invoices", form(url.Values{
			"customerId": {seed.LeeRobinsonID},
			"amount":     {amount},
			"status":     {"paid"},
		}), formContentType)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, amount)
	}

	var pages struct {
		TotalPages int `json:"total_pages"`
	}
	s.getJSON(t, "/api/invoices/pages", &pages)
	assert.Equal(t, 3, pages.TotalPages)
}

func TestInvoices_Update(t *testing.T) {
	s := newTestServer(t)
	id := seed.InvoiceID(0)

	resp := s.do(t, http.MethodPut, "/api/invoices/"+id, form(url.Values{
		"customerId": {seed.EvilRabbitID},
		"amount":     {"200"},
		"status":     {"paid"},
	}), formContentType)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, billing.InvoicesPath, resp.Header.Get("Location"))

	var inv map[string]any
	s.getJSON(t, "/api/invoices/"+id, &inv)
	assert.Equal(t, "200", inv["amount"])
	assert.Equal(t, "paid", inv["status"])
	assert.Equal(t, "2022-12-06", inv["date"])
}

func TestInvoices_UpdateInexistente500(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/invoices/00000000-0000-0000-0000-00000000dead", form(url.Values{
		"customerId": {seed.EvilRabbitID},
		"amount":     {"1"},
		"status":     {"paid"},
	}), formContentType)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, billing.MsgUpdateFailed, decodeBody(t, resp)["message"])
}

func TestInvoices_Delete(t *testing.T) {
	s := newTestServer(t)
	id := seed.InvoiceID(1)

	resp := s.do(t, http.MethodDelete, "/api/invoices/"+id, nil, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/invoices/"+id, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Borrar de nuevo no es error.
	resp = s.do(t, http.MethodDelete, "/api/invoices/"+id, nil, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers(t *testing.T) {
	s := newTestServer(t)

	var names []map[string]any
	s.getJSON(t, "/api/customers", &names)
	require.Len(t, names, 6)
	assert.Equal(t, "Amy Burns", names[0]["name"])

	var table []map[string]any
	s.getJSON(t, "/api/customers/table?query=ORBAN", &table)
	require.Len(t, table, 1)
	assert.EqualValues(t, 3, table[0]["total_invoices"])
	assert.Equal(t, "$345.77", table[0]["total_pending"])
	assert.Equal(t, "$174.91", table[0]["total_paid"])
}
