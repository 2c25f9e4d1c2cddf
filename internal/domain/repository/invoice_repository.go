package repository

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice (las líneas viajan en JSONB).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error)
	// UpdatePaymentStatus fija el estado; repetirlo con el mismo valor no cambia nada más.
	UpdatePaymentStatus(ctx context.Context, userID, id, status string) (*entity.Invoice, error)
}
