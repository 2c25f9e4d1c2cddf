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

// FollowUpUseCase casos de uso de seguimientos.
type FollowUpUseCase struct {
	repo  repository.FollowUpRepository
	cache ports.QueryCache
	log   zerolog.Logger
	now   Clock
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(repo repository.FollowUpRepository, cache ports.QueryCache, log zerolog.Logger) *FollowUpUseCase {
	return &FollowUpUseCase{repo: repo, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora; su zona define "hoy".
func (uc *FollowUpUseCase) WithClock(now Clock) *FollowUpUseCase {
	uc.now = now
	return uc
}

// List seguimientos del actor por fecha programada. tab vacío devuelve todos;
// si no, uno de today, upcoming, missed o completed, evaluado con la hora actual.
func (uc *FollowUpUseCase) List(ctx context.Context, actorID, tab string) ([]dto.FollowUpResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	var bucket followup.Bucket
	if tab = strings.ToLower(strings.TrimSpace(tab)); tab != "" && tab != StatusAll {
		b, ok := followup.ParseBucket(tab)
		if !ok {
			return nil, domain.NewValidationError("Invalid tab: " + tab)
		}
		bucket = b
	}

	var list []*entity.FollowUp
	err := uc.cache.GetOrFetch(ctx, ports.Key(ports.KeyFollowUps, actorID), &list, func(ctx context.Context) (any, error) {
		return uc.repo.ListByUser(ctx, actorID)
	})
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if bucket != "" {
		list = followup.Filter(list, bucket, now)
	}
	return toFollowUpResponses(list, now), nil
}

// Add programa un seguimiento pendiente.
func (uc *FollowUpUseCase) Add(ctx context.Context, actorID string, in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.Phone)
	switch {
	case name == "":
		return nil, domain.NewValidationError("Customer name is required")
	case phone == "":
		return nil, domain.NewValidationError("Phone is required")
	case in.ScheduledAt.IsZero():
		return nil, domain.NewValidationError("Scheduled date is required")
	}
	autoReminder := true
	if in.AutoReminder != nil {
		autoReminder = *in.AutoReminder
	}
	f := &entity.FollowUp{
		ID:           uuid.New().String(),
		UserID:       actorID,
		LeadID:       strings.TrimSpace(in.LeadID),
		CustomerID:   strings.TrimSpace(in.CustomerID),
		CustomerName: name,
		Phone:        phone,
		ScheduledAt:  in.ScheduledAt,
		Notes:        strings.TrimSpace(in.Notes),
		Type:         orDefault(in.Type, entity.FollowUpTypeCall),
		Status:       entity.FollowUpStatusPending,
		AutoReminder: autoReminder,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyFollowUps)
	out := dto.FromFollowUp(f, string(followup.Classify(f.ScheduledAt, f.Completed, uc.now())))
	return &out, nil
}

// Update aplica una actualización parcial. Si se envía completed, el estado se fija a done/pending.
func (uc *FollowUpUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error) {
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
	if completed, ok := patch["completed"].(bool); ok {
		patch["status"] = entity.StatusForCompletion(completed)
	} else if status, ok := patch["status"].(string); ok {
		// Un estado explícito mantiene coherente el flag completed.
		patch["completed"] = status == entity.FollowUpStatusDone
	}
	return uc.apply(ctx, actorID, id, patch)
}

// ToggleComplete marca o desmarca el seguimiento como hecho.
func (uc *FollowUpUseCase) ToggleComplete(ctx context.Context, actorID, id string, completed bool) (*dto.FollowUpResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	return uc.apply(ctx, actorID, id, repository.Patch{
		"completed": completed,
		"status":    entity.StatusForCompletion(completed),
	})
}

func (uc *FollowUpUseCase) apply(ctx context.Context, actorID, id string, patch repository.Patch) (*dto.FollowUpResponse, error) {
	f, err := uc.repo.Update(ctx, actorID, id, patch)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyFollowUps)
	out := dto.FromFollowUp(f, string(followup.Classify(f.ScheduledAt, f.Completed, uc.now())))
	return &out, nil
}
