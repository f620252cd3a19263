// Package validation contiene los esquemas declarativos que convierten la entrada cruda
// de un formulario en datos tipados o en mensajes de error por campo.
//
// La validación nunca entra en pánico ni devuelve error: devuelve los datos normalizados
// o un mapa campo → mensajes.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/pkg/money"
)

// Mensajes por campo del formulario de factura.
const (
	MsgCustomer = "Please select a customer"
	MsgAmount   = "Amount must be greater than $0"
	MsgStatus   = "Please select an invoice status"
	MsgEmail    = "Please enter a valid email address"
	MsgPassword = "Password must be at least 6 characters"
)

// FieldErrors errores de validación agrupados por nombre de campo.
type FieldErrors map[string][]string

// invoiceSchema esquema base de factura. Create y Update usan la variante sin id ni date
// (ver invoiceOmitted), que el servidor asigna.
type invoiceSchema struct {
	ID         string          `json:"id" validate:"required"`
	CustomerID string          `json:"customer_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Status     string          `json:"status" validate:"oneof=pending paid"`
	Date       string          `json:"date" validate:"required"`
}

// invoiceOmitted campos del esquema base excluidos en create/update.
var invoiceOmitted = []string{"ID", "Date"}

var invoiceMessages = map[string]string{
	"customer_id": MsgCustomer,
	"amount":      MsgAmount,
	"status":      MsgStatus,
}

type credentialsSchema struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var credentialsMessages = map[string]string{
	"email":    MsgEmail,
	"password": MsgPassword,
}

// InvoiceFields datos de factura ya validados y tipados.
// Cents es Amount * 100 redondeado, ya verificado contra el rango almacenable.
type InvoiceFields struct {
	CustomerID string
	Amount     decimal.Decimal
	Cents      int64
	Status     string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo en los errores según el tag json.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida en centavos: un monto que redondea a 0 o que no cabe
	// en la columna se presenta como -1 y falla gt=0.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			if cents, ok := money.CentsOf(d); ok {
				return cents
			}
			return int64(-1)
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ParseInvoiceForm valida el formulario de create/update.
// El monto se convierte de string a número; un valor no numérico, uno que redondea a 0
// centavos o uno fuera de rango fallan la misma regla que <= 0.
// Status debe ser exactamente "pending" o "paid" (sin espacios).
func ParseInvoiceForm(in dto.InvoiceFormInput) (*InvoiceFields, FieldErrors) {
	s := invoiceSchema{
		CustomerID: strings.TrimSpace(in.CustomerID),
		Amount:     coerceAmount(in.Amount),
		Status:     in.Status,
	}
	if errs := collect(validate.StructExcept(s, invoiceOmitted...), invoiceMessages); errs != nil {
		return nil, errs
	}
	cents, _ := money.CentsOf(s.Amount)
	return &InvoiceFields{CustomerID: s.CustomerID, Amount: s.Amount, Cents: cents, Status: s.Status}, nil
}

// ParseCredentials valida email bien formado y password de al menos 6 caracteres.
func ParseCredentials(in dto.Credentials) (*dto.Credentials, FieldErrors) {
	s := credentialsSchema{Email: strings.TrimSpace(in.Email), Password: in.Password}
	if errs := collect(validate.Struct(s), credentialsMessages); errs != nil {
		return nil, errs
	}
	return &dto.Credentials{Email: s.Email, Password: s.Password}, nil
}

func coerceAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// collect traduce los errores del validador a un mensaje fijo por campo.
func collect(err error, messages map[string]string) FieldErrors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": {err.Error()}}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := messages[field]
		if !ok {
			msg = "Invalid value"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
