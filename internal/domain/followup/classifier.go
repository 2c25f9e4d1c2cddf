// Package followup clasifica seguimientos en pestañas relativas a "ahora".
package followup

import (
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// Bucket pestaña de la vista de seguimientos.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketUpcoming  Bucket = "upcoming"
	BucketMissed    Bucket = "missed"
	BucketCompleted Bucket = "completed"
)

// Buckets todas las pestañas en orden de presentación.
var Buckets = []Bucket{BucketToday, BucketUpcoming, BucketMissed, BucketCompleted}

// ParseBucket valida el nombre de la pestaña.
func ParseBucket(s string) (Bucket, bool) {
	for _, b := range Buckets {
		if string(b) == s {
			return b, true
		}
	}
	return "", false
}

// Classify ubica un seguimiento en exactamente una pestaña.
// La fecha "de hoy" se evalúa en la zona horaria de now.
func Classify(scheduledAt time.Time, completed bool, now time.Time) Bucket {
	if completed {
		return BucketCompleted
	}
	if sameDay(scheduledAt.In(now.Location()), now) {
		return BucketToday
	}
	if scheduledAt.After(now) {
		return BucketUpcoming
	}
	return BucketMissed
}

// Filter devuelve los seguimientos de la pestaña pedida, conservando el orden de entrada.
func Filter(list []*entity.FollowUp, bucket Bucket, now time.Time) []*entity.FollowUp {
	out := make([]*entity.FollowUp, 0, len(list))
	for _, f := range list {
		if Classify(f.ScheduledAt, f.Completed, now) == bucket {
			out = append(out, f)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
