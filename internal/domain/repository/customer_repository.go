package repository

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las operaciones quedan acotadas al actor (userID).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// ListByUser devuelve los clientes del actor, más recientes primero.
	ListByUser(ctx context.Context, userID string) ([]*entity.Customer, error)
	// Update aplica patch y devuelve la fila resultante; domain.ErrNotFound si no existe.
	Update(ctx context.Context, userID, id string, patch Patch) (*entity.Customer, error)
}
