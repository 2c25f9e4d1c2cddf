package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Cada contador se resuelve por separado: si uno falla queda en 0 y su error aparece en Errors.
type DashboardSummaryDTO struct {
	TotalCustomers   int64           `json:"total_customers"`
	PendingFollowUps int64           `json:"pending_follow_ups"`
	Conversions      int64           `json:"conversions"`     // leads convertidos en el mes
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"` // facturas pagadas del mes
	RevenueLabel     string          `json:"revenue_label"`   // ej: "₹1,25,000"

	TodayFollowUps []FollowUpResponse `json:"today_follow_ups"`
	RecentLeads    []LeadResponse     `json:"recent_leads"` // los 3 más recientes

	MonthLabel string            `json:"month_label"` // ej: "October 2026"
	Errors     map[string]string `json:"errors,omitempty"`
}
