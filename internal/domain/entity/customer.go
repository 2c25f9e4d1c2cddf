package entity

import "time"

// Customer representa un cliente de la inmobiliaria.
// Los campos opcionales vacíos se guardan como NULL.
type Customer struct {
	ID             string
	UserID         string // actor dueño del registro
	Name           string
	Phone          string
	Email          string
	Address        string
	WhatsAppNumber string
	City           string
	Occupation     string
	CompanyName    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
