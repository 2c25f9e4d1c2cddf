package billing

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// Issuer datos del emisor impresos en la cabecera de la factura.
type Issuer struct {
	Name  string
	Phone string
	Email string
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, issuer Issuer) ([]byte, error)
}
