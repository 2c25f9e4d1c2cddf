package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo conteos y sumas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de lectura.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountCustomers total de clientes del actor.
func (r *DashboardRepo) CountCustomers(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, "customers", `SELECT COUNT(*) FROM customers WHERE user_id = $1`, userID)
}

// CountPendingFollowUps seguimientos con completed = false.
func (r *DashboardRepo) CountPendingFollowUps(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, "follow_ups", `SELECT COUNT(*) FROM follow_ups WHERE user_id = $1 AND completed = false`, userID)
}

// CountConversions leads convertidos con updated_at dentro del período.
func (r *DashboardRepo) CountConversions(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM leads
		WHERE user_id = $1 AND status = 'converted' AND updated_at >= $2 AND updated_at < $3`
	return r.count(ctx, "leads", query, userID, from, to)
}

// SumPaidRevenue suma del total de facturas pagadas creadas dentro del período.
func (r *DashboardRepo) SumPaidRevenue(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0) FROM invoices
		WHERE user_id = $1 AND payment_status = 'paid' AND created_at >= $2 AND created_at < $3`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, userID, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return sum, nil
}

func (r *DashboardRepo) count(ctx context.Context, table, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
