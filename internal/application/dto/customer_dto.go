package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Address        string `json:"address,omitempty"`
	WhatsAppNumber string `json:"whatsapp_number,omitempty"`
	City           string `json:"city,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
}

// UpdateCustomerRequest body para PATCH /api/customers/:id (solo los campos enviados).
type UpdateCustomerRequest struct {
	Name           *string `json:"name,omitempty" db:"name" validate:"omitempty,min=1"`
	Phone          *string `json:"phone,omitempty" db:"phone" validate:"omitempty,min=1"`
	Email          *string `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Address        *string `json:"address,omitempty" db:"address"`
	WhatsAppNumber *string `json:"whatsapp_number,omitempty" db:"whatsapp_number"`
	City           *string `json:"city,omitempty" db:"city"`
	Occupation     *string `json:"occupation,omitempty" db:"occupation"`
	CompanyName    *string `json:"company_name,omitempty" db:"company_name"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	WhatsAppNumber string    `json:"whatsapp_number,omitempty"`
	City           string    `json:"city,omitempty"`
	Occupation     string    `json:"occupation,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
