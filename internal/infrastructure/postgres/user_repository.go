package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo actores verificados por el proveedor OTP local.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// UpsertByPhone devuelve el usuario dueño del teléfono; lo crea en el primer ingreso.
// El id se conserva entre ingresos: ON CONFLICT solo toca phone para que RETURNING devuelva la fila existente.
func (r *UserRepo) UpsertByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		INSERT INTO users (id, phone, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING id, phone, created_at`
	var u entity.User
	err := r.q.QueryRow(ctx, query, uuid.New().String(), phone, time.Now().UTC()).Scan(&u.ID, &u.Phone, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}
