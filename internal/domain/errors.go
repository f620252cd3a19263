package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// Errores genéricos de consulta: son los únicos que cruzan el borde hacia el llamador.
// El error crudo de persistencia se registra en el log y nunca se expone.
var (
	ErrFetchUser           = errors.New("Failed to fetch user.")
	ErrFetchRevenue        = errors.New("Failed to fetch revenue data.")
	ErrFetchLatestInvoices = errors.New("Failed to fetch the latest invoices.")
	ErrFetchCardData       = errors.New("Failed to fetch card data.")
	ErrFetchInvoices       = errors.New("Failed to fetch invoices.")
	ErrFetchInvoicesPages  = errors.New("Failed to fetch total number of invoices.")
	ErrFetchInvoice        = errors.New("Failed to fetch invoice.")
	ErrFetchCustomers      = errors.New("Failed to fetch all customers.")
	ErrFetchCustomerTable  = errors.New("Failed to fetch customer table.")
)
