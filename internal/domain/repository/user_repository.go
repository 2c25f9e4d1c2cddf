package repository

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// UserRepository actores del proveedor OTP local.
type UserRepository interface {
	// UpsertByPhone devuelve el usuario del teléfono, creándolo si no existe.
	UpsertByPhone(ctx context.Context, phone string) (*entity.User, error)
}
