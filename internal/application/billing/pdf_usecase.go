package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// PDFUseCase genera la factura imprimible.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
	issuer      Issuer
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator, issuer Issuer) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator, issuer: issuer}
}

// DownloadInvoicePDF carga la factura del actor y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe o es de otro actor.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, actorID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	if actorID == "" {
		return nil, "", domain.ErrUnauthenticated
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, actorID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, inv.ID + ".pdf", nil
}
