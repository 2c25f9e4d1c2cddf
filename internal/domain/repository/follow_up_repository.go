package repository

import (
	"context"
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// FollowUpRepository define el puerto de persistencia para FollowUp.
type FollowUpRepository interface {
	Create(ctx context.Context, f *entity.FollowUp) error
	// ListByUser ordena por scheduled_at ascendente.
	ListByUser(ctx context.Context, userID string) ([]*entity.FollowUp, error)
	// ListByCustomer historial de un cliente, más reciente primero.
	ListByCustomer(ctx context.Context, userID, customerID string) ([]*entity.FollowUp, error)
	// ListPendingBetween seguimientos no completados con scheduled_at en [from, to).
	ListPendingBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.FollowUp, error)
	Update(ctx context.Context, userID, id string, patch Patch) (*entity.FollowUp, error)
}
