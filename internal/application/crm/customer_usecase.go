package crm

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/followup"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	followUps repository.FollowUpRepository
	cache     ports.QueryCache
	log       zerolog.Logger
	now       Clock
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, followUps repository.FollowUpRepository, cache ports.QueryCache, log zerolog.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, followUps: followUps, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora; su zona define "hoy".
func (uc *CustomerUseCase) WithClock(now Clock) *CustomerUseCase {
	uc.now = now
	return uc
}

// List clientes del actor, más recientes primero. search filtra por nombre, teléfono o ciudad.
func (uc *CustomerUseCase) List(ctx context.Context, actorID, search string) ([]dto.CustomerResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	var list []dto.CustomerResponse
	err := uc.cache.GetOrFetch(ctx, ports.Key(ports.KeyCustomers, actorID), &list, func(ctx context.Context) (any, error) {
		rows, err := uc.repo.ListByUser(ctx, actorID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CustomerResponse, 0, len(rows))
		for _, c := range rows {
			out = append(out, dto.FromCustomer(c))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return filterCustomers(list, search), nil
}

func filterCustomers(list []dto.CustomerResponse, search string) []dto.CustomerResponse {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return list
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(c.Phone, q) ||
			strings.Contains(strings.ToLower(c.City), q) {
			out = append(out, c)
		}
	}
	return out
}

// Add crea un cliente. Nombre y teléfono son obligatorios.
func (uc *CustomerUseCase) Add(ctx context.Context, actorID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" {
		return nil, domain.NewValidationError("Name is required")
	}
	if in.Phone == "" {
		return nil, domain.NewValidationError("Phone is required")
	}
	now := uc.now()
	c := &entity.Customer{
		ID:             uuid.New().String(),
		UserID:         actorID,
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          strings.TrimSpace(in.Email),
		Address:        strings.TrimSpace(in.Address),
		WhatsAppNumber: strings.TrimSpace(in.WhatsAppNumber),
		City:           strings.TrimSpace(in.City),
		Occupation:     strings.TrimSpace(in.Occupation),
		CompanyName:    strings.TrimSpace(in.CompanyName),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyCustomers)
	out := dto.FromCustomer(c)
	return &out, nil
}

// Update aplica una actualización parcial (gana la última escritura).
func (uc *CustomerUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	patch := patchFields(in)
	if err := requireNonEmpty(patch,
		required{"name", "Name is required"},
		required{"phone", "Phone is required"},
	); err != nil {
		return nil, err
	}
	c, err := uc.repo.Update(ctx, actorID, id, patch)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyCustomers)
	out := dto.FromCustomer(c)
	return &out, nil
}

// FollowUpHistory seguimientos de un cliente, más recientes primero.
func (uc *CustomerUseCase) FollowUpHistory(ctx context.Context, actorID, customerID string) ([]dto.FollowUpResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	var list []*entity.FollowUp
	key := ports.Key(ports.KeyFollowUps, actorID, "customer", customerID)
	err := uc.cache.GetOrFetch(ctx, key, &list, func(ctx context.Context) (any, error) {
		return uc.followUps.ListByCustomer(ctx, actorID, customerID)
	})
	if err != nil {
		return nil, err
	}
	return toFollowUpResponses(list, uc.now()), nil
}

// toFollowUpResponses calcula la pestaña de cada seguimiento con la hora actual (nunca se cachea).
func toFollowUpResponses(list []*entity.FollowUp, now time.Time) []dto.FollowUpResponse {
	out := make([]dto.FollowUpResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.FromFollowUp(f, string(followup.Classify(f.ScheduledAt, f.Completed, now))))
	}
	return out
}
