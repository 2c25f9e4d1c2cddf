package repository

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	// CreateBatch inserta todos los leads en un solo envío; usar dentro de una transacción.
	CreateBatch(ctx context.Context, leads []*entity.Lead) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Lead, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Lead, error)
	Update(ctx context.Context, userID, id string, patch Patch) (*entity.Lead, error)
}
