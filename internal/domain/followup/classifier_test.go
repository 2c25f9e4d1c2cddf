package followup_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/followup"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func TestClassify_HoyNoCompletado_SoloEnToday(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, ist)
	for _, at := range []time.Time{
		time.Date(2026, 10, 15, 0, 0, 0, 0, ist),
		time.Date(2026, 10, 15, 9, 30, 0, 0, ist),
		time.Date(2026, 10, 15, 23, 59, 0, 0, ist),
	} {
		assert.Equal(t, followup.BucketToday, followup.Classify(at, false, now))
	}
}

func TestClassify_FuturoPasadoYCompletado(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, ist)
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	assert.Equal(t, followup.BucketUpcoming, followup.Classify(tomorrow, false, now))
	assert.Equal(t, followup.BucketMissed, followup.Classify(yesterday, false, now))
	assert.Equal(t, followup.BucketCompleted, followup.Classify(yesterday, true, now))
	assert.Equal(t, followup.BucketCompleted, followup.Classify(now, true, now))
}

func TestClassify_UsaZonaHorariaDeNow(t *testing.T) {
	// 20:00 UTC del 14 ya es 15 de octubre en IST.
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, ist)
	at := time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, followup.BucketToday, followup.Classify(at, false, now))
}

// Seguimiento creado para mañana: aparece en "upcoming" y en ninguna otra pestaña.
func TestFilter_SeguimientoDeMananaSoloEnUpcoming(t *testing.T) {
	now := time.Date(2026, 10, 15, 18, 0, 0, 0, ist)
	fu := &entity.FollowUp{ID: "f1", ScheduledAt: now.AddDate(0, 0, 1)}
	list := []*entity.FollowUp{fu}

	require.Len(t, followup.Filter(list, followup.BucketUpcoming, now), 1)
	assert.Empty(t, followup.Filter(list, followup.BucketToday, now))
	assert.Empty(t, followup.Filter(list, followup.BucketMissed, now))
	assert.Empty(t, followup.Filter(list, followup.BucketCompleted, now))
}

func TestParseBucket(t *testing.T) {
	b, ok := followup.ParseBucket("missed")
	assert.True(t, ok)
	assert.Equal(t, followup.BucketMissed, b)

	_, ok = followup.ParseBucket("later")
	assert.False(t, ok)
}
