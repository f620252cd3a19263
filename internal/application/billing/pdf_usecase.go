package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-dashboard/internal/domain"
	"github.com/jhoicas/Facturas-dashboard/internal/domain/repository"
	"github.com/jhoicas/Facturas-dashboard/pkg/logger"
)

// PDFUseCase genera el PDF de una factura con los datos de su cliente.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	log          *logger.Logger
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	log *logger.Logger,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
		log:          log.Component("invoice_pdf"),
	}
}

// DownloadInvoicePDF carga la factura y su cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrFetchInvoice     ante cualquier fallo de lectura o generación.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", invoiceID).Msg("obtener factura")
		return nil, "", domain.ErrFetchInvoice
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", inv.CustomerID).Msg("obtener cliente")
		return nil, "", domain.ErrFetchInvoice
	}
	if customer == nil {
		// La FK garantiza el cliente; si falta, el dato está inconsistente.
		uc.log.Error().Str("customer_id", inv.CustomerID).Msg("factura sin cliente")
		return nil, "", domain.ErrFetchInvoice
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", invoiceID).Msg("generar PDF")
		return nil, "", domain.ErrFetchInvoice
	}
	return pdfBytes, fmt.Sprintf("factura-%s.pdf", inv.ID), nil
}
