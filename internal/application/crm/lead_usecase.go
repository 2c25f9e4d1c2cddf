package crm

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// StatusAll pestaña sin filtro de estado.
const StatusAll = "all"

// LeadUseCase casos de uso de leads.
type LeadUseCase struct {
	repo  repository.LeadRepository
	cache ports.QueryCache
	log   zerolog.Logger
	now   Clock
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, cache ports.QueryCache, log zerolog.Logger) *LeadUseCase {
	return &LeadUseCase{repo: repo, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora; su zona define "hoy".
func (uc *LeadUseCase) WithClock(now Clock) *LeadUseCase {
	uc.now = now
	return uc
}

// List leads del actor, más recientes primero. status vacío o "all" no filtra.
func (uc *LeadUseCase) List(ctx context.Context, actorID, status string) ([]dto.LeadResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != StatusAll && !entity.IsLeadStatus(status) {
		return nil, domain.NewValidationError("Invalid status: " + status)
	}
	var list []dto.LeadResponse
	err := uc.cache.GetOrFetch(ctx, ports.Key(ports.KeyLeads, actorID), &list, func(ctx context.Context) (any, error) {
		rows, err := uc.repo.ListByUser(ctx, actorID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.LeadResponse, 0, len(rows))
		for _, l := range rows {
			out = append(out, dto.FromLead(l))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	if status == "" || status == StatusAll {
		return list, nil
	}
	out := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

// Add crea un lead con estado "new" y los valores por defecto del formulario.
func (uc *LeadUseCase) Add(ctx context.Context, actorID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	lead, err := newLead(actorID, in, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyLeads)
	out := dto.FromLead(lead)
	return &out, nil
}

// newLead arma la entidad aplicando los valores por defecto.
func newLead(actorID string, in dto.CreateLeadRequest, now time.Time) (*entity.Lead, error) {
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.Phone)
	if name == "" {
		return nil, domain.NewValidationError("Customer name is required")
	}
	if phone == "" {
		return nil, domain.NewValidationError("Phone is required")
	}
	readyToMove := true
	if in.ReadyToMove != nil {
		readyToMove = *in.ReadyToMove
	}
	return &entity.Lead{
		ID:                     uuid.New().String(),
		UserID:                 actorID,
		CustomerID:             strings.TrimSpace(in.CustomerID),
		CustomerName:           name,
		Phone:                  phone,
		Email:                  strings.TrimSpace(in.Email),
		Source:                 orDefault(in.Source, entity.LeadSourceManual),
		Status:                 entity.LeadStatusNew,
		Notes:                  strings.TrimSpace(in.Notes),
		AssignedAgent:          strings.TrimSpace(in.AssignedAgent),
		Priority:               orDefault(in.LeadPriority, entity.DefaultLeadPriority),
		LeadType:               orDefault(in.LeadType, entity.DefaultLeadType),
		AlternatePhone:         strings.TrimSpace(in.AlternatePhone),
		Address:                strings.TrimSpace(in.Address),
		City:                   strings.TrimSpace(in.City),
		Occupation:             strings.TrimSpace(in.Occupation),
		CompanyName:            strings.TrimSpace(in.CompanyName),
		PropertyType:           in.PropertyType,
		Purpose:                orDefault(in.Purpose, entity.DefaultLeadPurpose),
		BudgetMin:              nonZero(in.BudgetMin),
		BudgetMax:              nonZero(in.BudgetMax),
		PreferredLocations:     in.PreferredLocations,
		BHKRequirement:         strings.TrimSpace(in.BHKRequirement),
		CarpetArea:             strings.TrimSpace(in.CarpetArea),
		Furnishing:             in.Furnishing,
		ParkingRequired:        in.ParkingRequired,
		FloorPreference:        strings.TrimSpace(in.FloorPreference),
		Facing:                 in.Facing,
		ReadyToMove:            readyToMove,
		ExpectedPossessionDate: in.ExpectedPossessionDate,
		TenantType:             in.TenantType,
		IsVegetarian:           in.IsVegetarian,
		HasPets:                in.HasPets,
		VisitDate:              in.VisitDate,
		VisitTime:              in.VisitTime,
		PropertyCategory:       in.PropertyCategory,
		PossessionFrom:         in.PossessionFrom,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

// Update aplica una actualización parcial; el estado puede pasar a cualquier otro del conjunto.
func (uc *LeadUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	patch := patchFields(in)
	if err := requireNonEmpty(patch,
		required{"customer_name", "Customer name is required"},
		required{"phone", "Phone is required"},
	); err != nil {
		return nil, err
	}
	if s, ok := patch["status"].(string); ok && !entity.IsLeadStatus(s) {
		return nil, domain.NewValidationError("Invalid status: " + s)
	}
	for _, col := range []string{"budget_min", "budget_max"} {
		if d, ok := patch[col].(decimal.Decimal); ok && d.IsZero() {
			patch[col] = nil
		}
	}
	return uc.apply(ctx, actorID, id, patch)
}

// UpdateStatus cambia solo el estado del lead.
func (uc *LeadUseCase) UpdateStatus(ctx context.Context, actorID, id, status string) (*dto.LeadResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !entity.IsLeadStatus(status) {
		return nil, domain.NewValidationError("Invalid status: " + status)
	}
	return uc.apply(ctx, actorID, id, repository.Patch{"status": status})
}

func (uc *LeadUseCase) apply(ctx context.Context, actorID, id string, patch repository.Patch) (*dto.LeadResponse, error) {
	lead, err := uc.repo.Update(ctx, actorID, id, patch)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyLeads)
	out := dto.FromLead(lead)
	return &out, nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// nonZero trata un presupuesto 0 como no informado.
func nonZero(d *decimal.Decimal) *decimal.Decimal {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}
