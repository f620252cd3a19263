package billing_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
)

var errDB = errors.New("connection refused")

// fakeInvoiceRepo repositorio en memoria que registra las llamadas recibidas.
type fakeInvoiceRepo struct {
	invoices  map[string]*entity.Invoice
	customers map[string]*entity.Customer
	err       error
	calls     []string
	nextID    int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:  map[string]*entity.Invoice{},
		customers: map[string]*entity.Customer{},
	}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.calls = append(f.calls, "Create")
	if f.err != nil {
		return f.err
	}
	f.nextID++
	cp := *inv
	cp.ID = fmt.Sprintf("inv-%02d", f.nextID)
	inv.ID = cp.ID
	f.invoices[cp.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.calls = append(f.calls, "Update")
	if f.err != nil {
		return f.err
	}
	cur, ok := f.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.CustomerID = inv.CustomerID
	cur.Amount = inv.Amount
	cur.Status = inv.Status
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	if f.err != nil {
		return f.err
	}
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	f.calls = append(f.calls, "GetByID")
	if f.err != nil {
		return nil, f.err
	}
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) filtered(query string) []repository.InvoiceRow {
	q := strings.ToLower(query)
	var rows []repository.InvoiceRow
	for _, inv := range f.invoices {
		c := f.customers[inv.CustomerID]
		if c == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		rows = append(rows, repository.InvoiceRow{
			ID: inv.ID, CustomerID: inv.CustomerID, Amount: inv.Amount, Status: inv.Status, Date: inv.Date,
			CustomerName: c.Name, CustomerEmail: c.Email, ImageURL: c.ImageURL,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date.Equal(rows[j].Date) {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

func (f *fakeInvoiceRepo) ListLatest(_ context.Context, limit int) ([]repository.InvoiceRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := f.filtered("")
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]repository.InvoiceRow, error) {
	f.calls = append(f.calls, "ListFiltered")
	if f.err != nil {
		return nil, f.err
	}
	rows := f.filtered(query)
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, query string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.filtered(query)), nil
}

func (f *fakeInvoiceRepo) Count(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.invoices), nil
}

func (f *fakeInvoiceRepo) SumAmountByStatus(_ context.Context, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var total int64
	for _, inv := range f.invoices {
		if inv.Status == status {
			total += inv.Amount
		}
	}
	return total, nil
}

// fakeInvalidator registra las rutas invalidadas.
type fakeInvalidator struct {
	paths []string
	err   error
}

func (f *fakeInvalidator) Revalidate(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

// fakeCustomerRepo repositorio de clientes en memoria.
type fakeCustomerRepo struct {
	customers []*entity.Customer
	totals    []repository.CustomerTotalsRow
	err       error
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListNames(_ context.Context) ([]*entity.Customer, error) {
	return f.customers, f.err
}

func (f *fakeCustomerRepo) ListWithTotals(_ context.Context, _ string) ([]repository.CustomerTotalsRow, error) {
	return f.totals, f.err
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int, error) {
	return len(f.customers), f.err
}
