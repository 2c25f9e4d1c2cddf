package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

const followUpColumns = `id, user_id, COALESCE(lead_id::text, ''), COALESCE(customer_id::text, ''),
	customer_name, phone, scheduled_at, COALESCE(notes, ''), completed,
	COALESCE(follow_up_type, 'call'), COALESCE(status, 'pending'), COALESCE(auto_reminder, true), created_at`

var followUpPatchColumns = columnSet{
	"lead_id":        {nullable: true, cast: "uuid"},
	"customer_id":    {nullable: true, cast: "uuid"},
	"customer_name":  {},
	"phone":          {},
	"scheduled_at":   {},
	"notes":          {nullable: true},
	"completed":      {},
	"follow_up_type": {},
	"status":         {},
	"auto_reminder":  {},
}

// FollowUpRepo implementación de FollowUpRepository (usable con pool o tx).
type FollowUpRepo struct {
	q Querier
}

// NewFollowUpRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFollowUpRepository(q Querier) *FollowUpRepo {
	return &FollowUpRepo{q: q}
}

// Create persiste un seguimiento.
func (r *FollowUpRepo) Create(ctx context.Context, f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, user_id, lead_id, customer_id, customer_name, phone, scheduled_at, notes,
			completed, follow_up_type, status, auto_reminder, created_at)
		VALUES ($1, $2, $3::uuid, $4::uuid, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.UserID, nullIfEmpty(f.LeadID), nullIfEmpty(f.CustomerID), f.CustomerName, f.Phone,
		f.ScheduledAt, nullIfEmpty(f.Notes), f.Completed, f.Type, f.Status, f.AutoReminder, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert follow-up: %w", err)
	}
	return nil
}

// ListByUser seguimientos del actor ordenados por fecha programada.
func (r *FollowUpRepo) ListByUser(ctx context.Context, userID string) ([]*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE user_id = $1 ORDER BY scheduled_at ASC`
	return r.list(ctx, query, userID)
}

// ListByCustomer historial de seguimientos de un cliente.
func (r *FollowUpRepo) ListByCustomer(ctx context.Context, userID, customerID string) ([]*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + `
		FROM follow_ups WHERE user_id = $1 AND customer_id = $2::uuid ORDER BY scheduled_at DESC`
	return r.list(ctx, query, userID, customerID)
}

// ListPendingBetween seguimientos pendientes programados en [from, to).
func (r *FollowUpRepo) ListPendingBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + `
		FROM follow_ups
		WHERE user_id = $1 AND completed = false AND scheduled_at >= $2 AND scheduled_at < $3
		ORDER BY scheduled_at ASC`
	return r.list(ctx, query, userID, from, to)
}

// Update aplica el patch sobre el seguimiento del actor.
func (r *FollowUpRepo) Update(ctx context.Context, userID, id string, patch repository.Patch) (*entity.FollowUp, error) {
	query, args, err := buildUpdate("follow_ups", followUpPatchColumns, false, patch, userID, id, followUpColumns)
	if err != nil {
		return nil, err
	}
	f, err := scanFollowUp(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update follow-up: %w", err)
	}
	return f, nil
}

func (r *FollowUpRepo) list(ctx context.Context, query string, args ...any) ([]*entity.FollowUp, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.FollowUp, 0)
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func scanFollowUp(row pgx.Row) (*entity.FollowUp, error) {
	var f entity.FollowUp
	err := row.Scan(&f.ID, &f.UserID, &f.LeadID, &f.CustomerID, &f.CustomerName, &f.Phone,
		&f.ScheduledAt, &f.Notes, &f.Completed, &f.Type, &f.Status, &f.AutoReminder, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
