// Package billing contiene los casos de uso de facturas, pagos y PDF de factura.
package billing

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	domainbilling "github.com/jhoicas/homeexotica-crm/internal/domain/billing"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
	"github.com/jhoicas/homeexotica-crm/pkg/money"
)

// StatusAll filtro "todos" de la vista de pagos.
const StatusAll = "all"

// InvoiceUseCase casos de uso de facturas y pagos.
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	cache ports.QueryCache
	log   zerolog.Logger
	now   func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, cache ports.QueryCache, log zerolog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora (tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// List facturas del actor, más recientes primero.
func (uc *InvoiceUseCase) List(ctx context.Context, actorID string) ([]dto.InvoiceResponse, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	var list []dto.InvoiceResponse
	err := uc.cache.GetOrFetch(ctx, ports.Key(ports.KeyInvoices, actorID), &list, func(ctx context.Context) (any, error) {
		rows, err := uc.repo.ListByUser(ctx, actorID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.InvoiceResponse, 0, len(rows))
		for _, inv := range rows {
			out = append(out, dto.FromInvoice(inv))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Preview calcula líneas y totales sin persistir nada.
func (uc *InvoiceUseCase) Preview(items []dto.InvoiceItemDTO, tax, discount decimal.Decimal) dto.InvoiceTotalsResponse {
	lines := domainbilling.RecomputeItems(dto.ToInvoiceItems(items))
	t := domainbilling.Compute(lines, tax, discount)
	return dto.InvoiceTotalsResponse{
		Items:      dto.FromInvoiceItems(lines),
		Subtotal:   t.Subtotal,
		Tax:        t.Tax,
		Discount:   t.Discount,
		Total:      t.Total,
		TotalLabel: money.FormatINR(t.Total, 2),
	}
}

// Create recalcula montos en el servidor y guarda la factura en estado pending.
func (uc *InvoiceUseCase) Create(ctx context.Context, actorID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, domain.NewValidationError("Customer name is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("Add at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity.IsNegative() || it.Rate.IsNegative() {
			return nil, domain.NewValidationError("Quantity and rate cannot be negative")
		}
	}

	now := uc.now()
	lines := domainbilling.RecomputeItems(dto.ToInvoiceItems(in.Items))
	t := domainbilling.Compute(lines, in.Tax, in.Discount)
	inv := &entity.Invoice{
		ID:            domainbilling.NewInvoiceID(now),
		UserID:        actorID,
		CustomerID:    strings.TrimSpace(in.CustomerID),
		CustomerName:  name,
		Items:         lines,
		Subtotal:      t.Subtotal,
		Tax:           t.Tax,
		Discount:      t.Discount,
		Total:         t.Total,
		PaymentStatus: entity.PaymentStatusPending,
		DueDate:       in.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, actorID)
	out := dto.FromInvoice(inv)
	return &out, nil
}

// UpdatePaymentStatus fija el estado de pago. Repetir la misma llamada deja el mismo estado.
func (uc *InvoiceUseCase) UpdatePaymentStatus(ctx context.Context, actorID, id, status string) (*dto.InvoiceResponse, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !entity.IsPaymentStatus(status) {
		return nil, domain.NewValidationError("Invalid payment status: " + status)
	}
	inv, err := uc.repo.UpdatePaymentStatus(ctx, actorID, id, status)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, actorID)
	out := dto.FromInvoice(inv)
	return &out, nil
}

// Payments facturas filtradas por estado ("all" o vacío = sin filtro).
// Los totales pendiente y recibido se calculan sobre todas las facturas.
func (uc *InvoiceUseCase) Payments(ctx context.Context, actorID, status string) (*dto.PaymentsResponse, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != StatusAll && !entity.IsPaymentStatus(status) {
		return nil, domain.NewValidationError("Invalid payment status: " + status)
	}
	all, err := uc.List(ctx, actorID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PaymentsResponse{
		Invoices:      make([]dto.InvoiceResponse, 0, len(all)),
		TotalPending:  decimal.Zero,
		TotalReceived: decimal.Zero,
	}
	for _, inv := range all {
		switch inv.PaymentStatus {
		case entity.PaymentStatusPending:
			resp.TotalPending = resp.TotalPending.Add(inv.Total)
		case entity.PaymentStatusPaid:
			resp.TotalReceived = resp.TotalReceived.Add(inv.Total)
		}
		if status == "" || status == StatusAll || inv.PaymentStatus == status {
			resp.Invoices = append(resp.Invoices, inv)
		}
	}
	resp.TotalPendingLabel = money.FormatINR(resp.TotalPending, 2)
	resp.TotalReceivedLabel = money.FormatINR(resp.TotalReceived, 2)
	return resp, nil
}

func (uc *InvoiceUseCase) invalidate(ctx context.Context, actorID string) {
	for _, root := range []string{ports.KeyInvoices, ports.KeyDashboardStats} {
		key := ports.Key(root, actorID)
		if err := uc.cache.Invalidate(ctx, key); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo invalidar el cache")
		}
	}
}
