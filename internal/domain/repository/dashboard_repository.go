package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas de solo lectura (conteos y sumas) para el dashboard.
// Cada método es independiente para poder ejecutarlos en paralelo.
type DashboardRepository interface {
	CountCustomers(ctx context.Context, userID string) (int64, error)
	CountPendingFollowUps(ctx context.Context, userID string) (int64, error)
	// CountConversions leads en estado converted con updated_at en [from, to).
	CountConversions(ctx context.Context, userID string, from, to time.Time) (int64, error)
	// SumPaidRevenue suma total de facturas paid con created_at en [from, to).
	SumPaidRevenue(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)
}
