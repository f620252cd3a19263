package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Facturas-dashboard/internal/application/dto"
	"github.com/jhoicas/Facturas-dashboard/internal/application/validation"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/entity"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

// Mensajes devueltos al formulario.
const (
	MsgCreateMissingFields = "Missing Fields, Failed to create an invoice."
	MsgUpdateMissingFields = "Missing Fields, Failed to update invoice."
	MsgCreateFailed        = "Failed to create invoice"
	MsgUpdateFailed        = "Failed to update invoice"
	MsgDeleteFailed        = "Failed to delete invoice"
)

// InvoiceActions acciones de formulario sobre facturas: validar → normalizar → una
// operación de persistencia → invalidar la vista de listado.
//
// Los errores de validación vuelven como datos (ActionState); los de infraestructura se
// registran en el log y se reemplazan por un mensaje genérico.
type InvoiceActions struct {
	invoices    repository.InvoiceRepository
	invalidator PathInvalidator
	log         *logger.Logger
	now         func() time.Time
}

// NewInvoiceActions construye las acciones de factura.
func NewInvoiceActions(invoices repository.InvoiceRepository, invalidator PathInvalidator, log *logger.Logger) *InvoiceActions {
	return &InvoiceActions{
		invoices:    invoices,
		invalidator: invalidator,
		log:         log.Component("invoice_actions"),
		now:         time.Now,
	}
}

// CreateInvoice valida el formulario, guarda el monto en centavos con la fecha de hoy
// y, si todo sale bien, redirige al listado.
func (uc *InvoiceActions) CreateInvoice(ctx context.Context, in dto.InvoiceFormInput) dto.ActionResult {
	fields, errs := validation.ParseInvoiceForm(in)
	if errs != nil {
		return dto.ActionResult{State: &dto.ActionState{Errors: errs, Message: MsgCreateMissingFields}}
	}

	invoice := &entity.Invoice{
		CustomerID: fields.CustomerID,
		Amount:     fields.Cents,
		Status:     fields.Status,
		Date:       calendarDate(uc.now()),
	}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Str("op", "createInvoice").Msg("error de base de datos")
		return dto.ActionResult{State: &dto.ActionState{Message: MsgCreateFailed}}
	}

	uc.revalidate(ctx, "createInvoice")
	return dto.ActionResult{RedirectTo: InvoicesPath}
}

// UpdateInvoice actualiza cliente, monto y estado de la factura id.
// El id llega como parámetro aparte (ruta), nunca desde el formulario.
func (uc *InvoiceActions) UpdateInvoice(ctx context.Context, id string, in dto.InvoiceFormInput) dto.ActionResult {
	fields, errs := validation.ParseInvoiceForm(in)
	if errs != nil {
		return dto.ActionResult{State: &dto.ActionState{Errors: errs, Message: MsgUpdateMissingFields}}
	}

	invoice := &entity.Invoice{
		ID:         id,
		CustomerID: fields.CustomerID,
		Amount:     fields.Cents,
		Status:     fields.Status,
	}
	if err := uc.invoices.Update(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Str("op", "updateInvoice").Str("invoice_id", id).Msg("error de base de datos")
		return dto.ActionResult{State: &dto.ActionState{Message: MsgUpdateFailed}}
	}

	uc.revalidate(ctx, "updateInvoice")
	return dto.ActionResult{RedirectTo: InvoicesPath}
}

// DeleteInvoice elimina la factura id. No redirige: se invoca desde la fila del listado.
// Devuelve nil si tuvo éxito.
func (uc *InvoiceActions) DeleteInvoice(ctx context.Context, id string) *dto.ActionState {
	if err := uc.invoices.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("op", "deleteInvoice").Str("invoice_id", id).Msg("error de base de datos")
		return &dto.ActionState{Message: MsgDeleteFailed}
	}
	uc.revalidate(ctx, "deleteInvoice")
	return nil
}

// revalidate invalida la vista de listado. La mutación ya quedó persistida, así que un
// fallo aquí solo se registra.
func (uc *InvoiceActions) revalidate(ctx context.Context, op string) {
	if err := uc.invalidator.Revalidate(ctx, InvoicesPath); err != nil {
		uc.log.Warn().Err(err).Str("op", op).Str("path", InvoicesPath).Msg("no se pudo invalidar la vista")
	}
}

// calendarDate trunca t a la fecha de calendario UTC (sin hora).
func calendarDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
