package entity

import "time"

// Tipos de seguimiento.
const (
	FollowUpTypeCall     = "call"
	FollowUpTypeWhatsApp = "whatsapp"
	FollowUpTypeVisit    = "visit"
	FollowUpTypeMeeting  = "meeting"
)

// Estados de seguimiento. completed=true implica FollowUpStatusDone.
const (
	FollowUpStatusPending = "pending"
	FollowUpStatusDone    = "done"
	FollowUpStatusMissed  = "missed"
)

// FollowUp tarea programada de contacto con un cliente.
type FollowUp struct {
	ID           string
	UserID       string
	LeadID       string
	CustomerID   string
	CustomerName string
	Phone        string
	ScheduledAt  time.Time
	Notes        string
	Completed    bool
	Type         string
	Status       string
	AutoReminder bool
	CreatedAt    time.Time
}

// StatusForCompletion devuelve el estado que corresponde al flag completed.
func StatusForCompletion(completed bool) string {
	if completed {
		return FollowUpStatusDone
	}
	return FollowUpStatusPending
}
