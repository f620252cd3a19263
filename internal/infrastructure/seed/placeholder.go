// Package seed datos de ejemplo para arrancar una base vacía (cmd/seed y tests de repositorios).
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
)

// Dataset conjunto completo de filas a insertar.
type Dataset struct {
	Users     []entity.User
	Customers []entity.Customer
	Invoices  []entity.Invoice
	Revenue   []entity.Revenue
}

// IDs fijos de los clientes de ejemplo.
const (
	EvilRabbitID      = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"
	DelbaDeOliveiraID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	LeeRobinsonID     = "3958dc9e-742f-4377-85e9-fec4b6a6442a"
	MichaelNovotnyID  = "76d65c26-f784-44a2-ac19-586678f7c2f2"
	AmyBurnsID        = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
	BalazsOrbanID     = "13d07535-c59e-4157-a011-f8d2ef4e0cbb"
)

// Usuario de ejemplo (password en claro solo dentro del dataset sin hashear).
const (
	UserEmail    = "user@nextmail.com"
	UserPassword = "123456"
)

// Placeholder devuelve el dataset de ejemplo con los passwords en claro.
// Los ids de factura se derivan del índice para que volver a sembrar no duplique filas.
func Placeholder() Dataset {
	ds := Dataset{
		Users: []entity.User{
			{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: UserEmail, Password: UserPassword},
		},
		Customers: []entity.Customer{
			{ID: EvilRabbitID, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
			{ID: DelbaDeOliveiraID, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
			{ID: LeeRobinsonID, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
			{ID: MichaelNovotnyID, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
			{ID: AmyBurnsID, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
			{ID: BalazsOrbanID, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
		},
	}

	invoices := []struct {
		customerID string
		amount     int64
		status     string
		date       string
	}{
		{EvilRabbitID, 15795, entity.InvoiceStatusPending, "2022-12-06"},
		{DelbaDeOliveiraID, 20348, entity.InvoiceStatusPending, "2022-11-14"},
		{AmyBurnsID, 3040, entity.InvoiceStatusPaid, "2022-10-29"},
		{MichaelNovotnyID, 44800, entity.InvoiceStatusPaid, "2023-09-10"},
		{BalazsOrbanID, 34577, entity.InvoiceStatusPending, "2023-08-05"},
		{LeeRobinsonID, 54246, entity.InvoiceStatusPending, "2023-07-16"},
		{EvilRabbitID, 666, entity.InvoiceStatusPending, "2023-06-27"},
		{MichaelNovotnyID, 32545, entity.InvoiceStatusPaid, "2023-06-09"},
		{AmyBurnsID, 1250, entity.InvoiceStatusPaid, "2023-06-17"},
		{BalazsOrbanID, 8546, entity.InvoiceStatusPaid, "2023-06-07"},
		{DelbaDeOliveiraID, 500, entity.InvoiceStatusPaid, "2023-08-19"},
		{BalazsOrbanID, 8945, entity.InvoiceStatusPaid, "2023-06-03"},
		{LeeRobinsonID, 1000, entity.InvoiceStatusPaid, "2022-06-05"},
	}
	for i, inv := range invoices {
		date, err := time.Parse(entity.DateLayout, inv.date)
		if err != nil {
			panic(fmt.Sprintf("seed: fecha inválida %q", inv.date))
		}
		ds.Invoices = append(ds.Invoices, entity.Invoice{
			ID:         InvoiceID(i),
			CustomerID: inv.customerID,
			Amount:     inv.amount,
			Status:     inv.status,
			Date:       date,
		})
	}

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	amounts := []int64{2000, 1800, 2200, 2500, 2300, 3200, 3500, 3700, 2500, 2800, 3000, 4800}
	for i, m := range months {
		ds.Revenue = append(ds.Revenue, entity.Revenue{Month: m, Revenue: decimal.NewFromInt(amounts[i])})
	}
	return ds
}

// InvoiceID id determinista de la factura de ejemplo i.
func InvoiceID(i int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("facturas-dashboard/invoice/%d", i))).String()
}

// HashPasswords devuelve una copia del dataset con los passwords reemplazados por su hash bcrypt.
func HashPasswords(ds Dataset, cost int) (Dataset, error) {
	users := make([]entity.User, len(ds.Users))
	for i, u := range ds.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return Dataset{}, fmt.Errorf("hash password %s: %w", u.Email, err)
		}
		u.Password = string(hash)
		users[i] = u
	}
	ds.Users = users
	return ds, nil
}
