package crm_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

var followUpNow = time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC)

func newFollowUpUC(repo *fakeFollowUpRepo, cache *recordingCache) *crm.FollowUpUseCase {
	return crm.NewFollowUpUseCase(repo, cache, zerolog.Nop()).WithClock(func() time.Time { return followUpNow })
}

// Un seguimiento pendiente programado para mañana solo aparece en "upcoming".
func TestFollowUp_Manana_SoloEnUpcoming(t *testing.T) {
	repo := &fakeFollowUpRepo{rows: []*entity.FollowUp{
		{ID: "tomorrow", UserID: actor, ScheduledAt: followUpNow.Add(24 * time.Hour)},
	}}
	uc := newFollowUpUC(repo, newRecordingCache())
	ctx := context.Background()

	for tab, want := range map[string]int{"today": 0, "upcoming": 1, "missed": 0, "completed": 0} {
		list, err := uc.List(ctx, actor, tab)
		require.NoError(t, err)
		assert.Len(t, list, want, tab)
	}
}

func TestFollowUp_List_PestanasYOrden(t *testing.T) {
	repo := &fakeFollowUpRepo{rows: []*entity.FollowUp{
		{ID: "later-today", UserID: actor, ScheduledAt: followUpNow.Add(3 * time.Hour)},
		{ID: "earlier-today", UserID: actor, ScheduledAt: followUpNow.Add(-3 * time.Hour)},
		{ID: "yesterday", UserID: actor, ScheduledAt: followUpNow.Add(-24 * time.Hour)},
		{ID: "done", UserID: actor, ScheduledAt: followUpNow.Add(-48 * time.Hour), Completed: true, Status: "done"},
	}}
	uc := newFollowUpUC(repo, newRecordingCache())
	ctx := context.Background()

	today, err := uc.List(ctx, actor, "today")
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, "earlier-today", today[0].ID)
	assert.Equal(t, "later-today", today[1].ID)

	missed, _ := uc.List(ctx, actor, "missed")
	require.Len(t, missed, 1)
	assert.Equal(t, "yesterday", missed[0].ID)

	all, _ := uc.List(ctx, actor, "")
	assert.Len(t, all, 4)

	_, err = uc.List(ctx, actor, "someday")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFollowUp_Add_Defaults(t *testing.T) {
	repo := &fakeFollowUpRepo{}
	cache := newRecordingCache()
	uc := newFollowUpUC(repo, cache)

	out, err := uc.Add(context.Background(), actor, dto.CreateFollowUpRequest{
		CustomerName: "Asha", Phone: "9876543210", ScheduledAt: followUpNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "call", out.Type)
	assert.Equal(t, "pending", out.Status)
	assert.True(t, out.AutoReminder)
	assert.False(t, out.Completed)
	assert.Equal(t, "today", out.Bucket)
	assert.Equal(t, []string{"dashboard_stats:" + actor, "follow_ups:" + actor}, cache.invalidations())

	_, err = uc.Add(context.Background(), actor, dto.CreateFollowUpRequest{CustomerName: "Asha", Phone: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFollowUp_ToggleComplete_FijaEstado(t *testing.T) {
	repo := &fakeFollowUpRepo{rows: []*entity.FollowUp{{ID: "f1", UserID: actor, ScheduledAt: followUpNow, Status: "pending"}}}
	uc := newFollowUpUC(repo, newRecordingCache())

	out, err := uc.ToggleComplete(context.Background(), actor, "f1", true)
	require.NoError(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, "done", out.Status)
	assert.Equal(t, "completed", out.Bucket)

	out, err = uc.ToggleComplete(context.Background(), actor, "f1", false)
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status)
}

func TestFollowUp_Update_CompletedFuerzaEstado(t *testing.T) {
	repo := &fakeFollowUpRepo{rows: []*entity.FollowUp{{ID: "f1", UserID: actor, ScheduledAt: followUpNow}}}
	uc := newFollowUpUC(repo, newRecordingCache())
	yes := true
	pending := "pending"

	_, err := uc.Update(context.Background(), actor, "f1", dto.UpdateFollowUpRequest{Completed: &yes, Status: &pending})
	require.NoError(t, err)
	require.Len(t, repo.patches, 1)
	assert.Equal(t, "done", repo.patches[0]["status"])
	assert.Equal(t, true, repo.patches[0]["completed"])
}

func TestFollowUp_Update_Inexistente(t *testing.T) {
	uc := newFollowUpUC(&fakeFollowUpRepo{}, newRecordingCache())
	yes := true
	_, err := uc.Update(context.Background(), actor, "nope", dto.UpdateFollowUpRequest{Completed: &yes})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
