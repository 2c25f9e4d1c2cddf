package dto

import "time"

// CreateFollowUpRequest body para POST /api/follow-ups.
type CreateFollowUpRequest struct {
	LeadID       string    `json:"lead_id,omitempty" validate:"omitempty,uuid"`
	CustomerID   string    `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	CustomerName string    `json:"customer_name" validate:"required"`
	Phone        string    `json:"phone" validate:"required"`
	ScheduledAt  time.Time `json:"scheduled_at" validate:"required"`
	Notes        string    `json:"notes,omitempty"`
	Type         string    `json:"follow_up_type,omitempty" validate:"omitempty,oneof=call whatsapp visit meeting"`
	AutoReminder *bool     `json:"auto_reminder,omitempty"`
}

// UpdateFollowUpRequest body para PATCH /api/follow-ups/:id.
type UpdateFollowUpRequest struct {
	LeadID       *string    `json:"lead_id,omitempty" db:"lead_id" validate:"omitempty,uuid"`
	CustomerID   *string    `json:"customer_id,omitempty" db:"customer_id" validate:"omitempty,uuid"`
	CustomerName *string    `json:"customer_name,omitempty" db:"customer_name" validate:"omitempty,min=1"`
	Phone        *string    `json:"phone,omitempty" db:"phone" validate:"omitempty,min=1"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty" db:"scheduled_at"`
	Notes        *string    `json:"notes,omitempty" db:"notes"`
	Completed    *bool      `json:"completed,omitempty" db:"completed"`
	Type         *string    `json:"follow_up_type,omitempty" db:"follow_up_type" validate:"omitempty,oneof=call whatsapp visit meeting"`
	Status       *string    `json:"status,omitempty" db:"status" validate:"omitempty,oneof=pending done missed"`
	AutoReminder *bool      `json:"auto_reminder,omitempty" db:"auto_reminder"`
}

// CompleteFollowUpRequest body para PATCH /api/follow-ups/:id/complete.
type CompleteFollowUpRequest struct {
	Completed bool `json:"completed"`
}

// FollowUpResponse seguimiento en respuestas; Bucket es la pestaña calculada al momento de la consulta.
type FollowUpResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	LeadID       string    `json:"lead_id,omitempty"`
	CustomerID   string    `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Notes        string    `json:"notes,omitempty"`
	Completed    bool      `json:"completed"`
	Type         string    `json:"follow_up_type"`
	Status       string    `json:"status"`
	AutoReminder bool      `json:"auto_reminder"`
	Bucket       string    `json:"bucket"`
	CreatedAt    time.Time `json:"created_at"`
}
