// Package analytics contiene el resumen del dashboard: contadores del actor,
// seguimientos de hoy y leads recientes.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/followup"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
	"github.com/jhoicas/homeexotica-crm/pkg/money"
)

// RecentLeadsLimit número de leads en el widget "recientes".
const RecentLeadsLimit = 3

// Claves del mapa de errores parciales.
const (
	MetricTotalCustomers   = "total_customers"
	MetricPendingFollowUps = "pending_follow_ups"
	MetricConversions      = "conversions"
	MetricMonthlyRevenue   = "monthly_revenue"
	MetricTodayFollowUps   = "today_follow_ups"
	MetricRecentLeads      = "recent_leads"
)

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: DashboardRepository (conteos y sumas) más los repos de
// seguimientos y leads para las listas cortas.
type DashboardUseCase struct {
	stats     repository.DashboardRepository
	followUps repository.FollowUpRepository
	leads     repository.LeadRepository
	cache     ports.QueryCache
	log       zerolog.Logger
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	stats repository.DashboardRepository,
	followUps repository.FollowUpRepository,
	leads repository.LeadRepository,
	cache ports.QueryCache,
	log zerolog.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, followUps: followUps, leads: leads, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora; su zona horaria define "hoy" y "este mes".
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// partialSummary resumen con contadores fallidos: se devuelve pero no se guarda en cache.
type partialSummary struct {
	summary *dto.DashboardSummaryDTO
}

func (p *partialSummary) Error() string {
	return fmt.Sprintf("dashboard: %d métricas fallaron", len(p.summary.Errors))
}

// GetSummary construye el DashboardSummaryDTO del actor.
//
// Seis consultas en paralelo:
//  1. CountCustomers           → TotalCustomers
//  2. CountPendingFollowUps    → PendingFollowUps
//  3. CountConversions(mes)    → Conversions
//  4. SumPaidRevenue(mes)      → MonthlyRevenue
//  5. ListPendingBetween(hoy)  → TodayFollowUps
//  6. ListRecent(3)            → RecentLeads
//
// Una consulta que falla deja su valor en cero y agrega su error en Errors.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actorID string) (*dto.DashboardSummaryDTO, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	var out dto.DashboardSummaryDTO
	err := uc.cache.GetOrFetch(ctx, ports.Key(ports.KeyDashboardStats, actorID), &out, func(ctx context.Context) (any, error) {
		s := uc.compute(ctx, actorID)
		if len(s.Errors) > 0 {
			return nil, &partialSummary{summary: s}
		}
		return s, nil
	})
	var partial *partialSummary
	if errors.As(err, &partial) {
		return partial.summary, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *DashboardUseCase) compute(ctx context.Context, actorID string) *dto.DashboardSummaryDTO {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	// Hoy: [00:00, 00:00 del día siguiente) en la zona de now.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	// Mes en curso: [día 1, día 1 del mes siguiente).
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type countResult struct {
		n   int64
		err error
	}
	type revenueResult struct {
		sum decimal.Decimal
		err error
	}
	type followUpsResult struct {
		list []dto.FollowUpResponse
		err  error
	}
	type leadsResult struct {
		list []dto.LeadResponse
		err  error
	}

	customersCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	conversionsCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)
	todayCh := make(chan followUpsResult, 1)
	recentCh := make(chan leadsResult, 1)

	go func() {
		n, err := uc.stats.CountCustomers(ctx, actorID)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountPendingFollowUps(ctx, actorID)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountConversions(ctx, actorID, monthStart, monthEnd)
		conversionsCh <- countResult{n, err}
	}()
	go func() {
		sum, err := uc.stats.SumPaidRevenue(ctx, actorID, monthStart, monthEnd)
		revenueCh <- revenueResult{sum, err}
	}()
	go func() {
		rows, err := uc.followUps.ListPendingBetween(ctx, actorID, todayStart, todayEnd)
		list := make([]dto.FollowUpResponse, 0, len(rows))
		for _, f := range rows {
			list = append(list, dto.FromFollowUp(f, string(followup.Classify(f.ScheduledAt, f.Completed, now))))
		}
		todayCh <- followUpsResult{list, err}
	}()
	go func() {
		rows, err := uc.leads.ListRecent(ctx, actorID, RecentLeadsLimit)
		list := make([]dto.LeadResponse, 0, len(rows))
		for _, l := range rows {
			list = append(list, dto.FromLead(l))
		}
		recentCh <- leadsResult{list, err}
	}()

	customers := <-customersCh
	pending := <-pendingCh
	conversions := <-conversionsCh
	revenue := <-revenueCh
	today := <-todayCh
	recent := <-recentCh

	// ── Construir DTO ──────────────────────────────────────────────────────────
	s := &dto.DashboardSummaryDTO{
		MonthlyRevenue: decimal.Zero,
		TodayFollowUps: []dto.FollowUpResponse{},
		RecentLeads:    []dto.LeadResponse{},
		MonthLabel:     now.Format("January 2006"),
	}
	fail := func(metric string, err error) {
		if s.Errors == nil {
			s.Errors = map[string]string{}
		}
		s.Errors[metric] = err.Error()
		uc.log.Warn().Err(err).Str("metric", metric).Str("user_id", actorID).Msg("dashboard: métrica fallida")
	}

	if customers.err != nil {
		fail(MetricTotalCustomers, customers.err)
	} else {
		s.TotalCustomers = customers.n
	}
	if pending.err != nil {
		fail(MetricPendingFollowUps, pending.err)
	} else {
		s.PendingFollowUps = pending.n
	}
	if conversions.err != nil {
		fail(MetricConversions, conversions.err)
	} else {
		s.Conversions = conversions.n
	}
	if revenue.err != nil {
		fail(MetricMonthlyRevenue, revenue.err)
	} else {
		s.MonthlyRevenue = revenue.sum
	}
	if today.err != nil {
		fail(MetricTodayFollowUps, today.err)
	} else {
		s.TodayFollowUps = today.list
	}
	if recent.err != nil {
		fail(MetricRecentLeads, recent.err)
	} else {
		s.RecentLeads = recent.list
	}
	s.RevenueLabel = money.FormatINR(s.MonthlyRevenue, 0)
	return s
}
