package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest body para POST /api/leads.
// Los enums vacíos toman el valor por defecto en el caso de uso.
type CreateLeadRequest struct {
	CustomerID   string `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Source       string `json:"source" validate:"omitempty,oneof=website whatsapp facebook instagram walkin referral broker phone manual magicbricks commonfloor 99acres housing sulekha"`
	Notes        string `json:"notes,omitempty"`

	AssignedAgent  string `json:"assigned_agent,omitempty"`
	LeadPriority   string `json:"lead_priority,omitempty" validate:"omitempty,oneof=hot warm cold"`
	LeadType       string `json:"lead_type,omitempty" validate:"omitempty,oneof=buyer seller tenant investor"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`

	PropertyType           string           `json:"property_type,omitempty" validate:"omitempty,oneof=apartment villa plot commercial office shop house"`
	Purpose                string           `json:"purpose,omitempty" validate:"omitempty,oneof=buy rent lease"`
	BudgetMin              *decimal.Decimal `json:"budget_min,omitempty"`
	BudgetMax              *decimal.Decimal `json:"budget_max,omitempty"`
	PreferredLocations     []string         `json:"preferred_locations,omitempty"`
	BHKRequirement         string           `json:"bhk_requirement,omitempty"`
	CarpetArea             string           `json:"carpet_area,omitempty"`
	Furnishing             string           `json:"furnishing,omitempty" validate:"omitempty,oneof=unfurnished semi fully"`
	ParkingRequired        bool             `json:"parking_required,omitempty"`
	FloorPreference        string           `json:"floor_preference,omitempty"`
	Facing                 string           `json:"facing,omitempty" validate:"omitempty,oneof=east west north south any"`
	ReadyToMove            *bool            `json:"ready_to_move,omitempty"`
	ExpectedPossessionDate string           `json:"expected_possession_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	TenantType       string `json:"tenant_type,omitempty" validate:"omitempty,oneof=family bachelors any"`
	IsVegetarian     *bool  `json:"is_vegetarian,omitempty"`
	HasPets          *bool  `json:"has_pets,omitempty"`
	VisitDate        string `json:"visit_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	VisitTime        string `json:"visit_time,omitempty" validate:"omitempty,datetime=15:04"`
	PropertyCategory string `json:"property_category,omitempty" validate:"omitempty,oneof=own other_agent sandya"`
	PossessionFrom   string `json:"possession_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateLeadRequest body para PATCH /api/leads/:id. Solo se actualizan los campos presentes.
// El tag db es el nombre de la columna en la tabla leads.
type UpdateLeadRequest struct {
	CustomerID   *string `json:"customer_id,omitempty" db:"customer_id" validate:"omitempty,uuid"`
	CustomerName *string `json:"customer_name,omitempty" db:"customer_name" validate:"omitempty,min=1"`
	Phone        *string `json:"phone,omitempty" db:"phone" validate:"omitempty,min=1"`
	Email        *string `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Source       *string `json:"source,omitempty" db:"source" validate:"omitempty,oneof=website whatsapp facebook instagram walkin referral broker phone manual magicbricks commonfloor 99acres housing sulekha"`
	Status       *string `json:"status,omitempty" db:"status" validate:"omitempty,oneof=new contacted site_visit negotiation booked lost followup converted closed"`
	Notes        *string `json:"notes,omitempty" db:"notes"`

	AssignedAgent  *string `json:"assigned_agent,omitempty" db:"assigned_agent"`
	LeadPriority   *string `json:"lead_priority,omitempty" db:"lead_priority" validate:"omitempty,oneof=hot warm cold"`
	LeadType       *string `json:"lead_type,omitempty" db:"lead_type" validate:"omitempty,oneof=buyer seller tenant investor"`
	AlternatePhone *string `json:"alternate_phone,omitempty" db:"alternate_phone"`
	Address        *string `json:"address,omitempty" db:"address"`
	City           *string `json:"city,omitempty" db:"city"`
	Occupation     *string `json:"occupation,omitempty" db:"occupation"`
	CompanyName    *string `json:"company_name,omitempty" db:"company_name"`

	PropertyType           *string          `json:"property_type,omitempty" db:"property_type" validate:"omitempty,oneof=apartment villa plot commercial office shop house"`
	Purpose                *string          `json:"purpose,omitempty" db:"purpose" validate:"omitempty,oneof=buy rent lease"`
	BudgetMin              *decimal.Decimal `json:"budget_min,omitempty" db:"budget_min"`
	BudgetMax              *decimal.Decimal `json:"budget_max,omitempty" db:"budget_max"`
	PreferredLocations     *[]string        `json:"preferred_locations,omitempty" db:"preferred_locations"`
	BHKRequirement         *string          `json:"bhk_requirement,omitempty" db:"bhk_requirement"`
	CarpetArea             *string          `json:"carpet_area,omitempty" db:"carpet_area"`
	Furnishing             *string          `json:"furnishing,omitempty" db:"furnishing" validate:"omitempty,oneof=unfurnished semi fully"`
	ParkingRequired        *bool            `json:"parking_required,omitempty" db:"parking_required"`
	FloorPreference        *string          `json:"floor_preference,omitempty" db:"floor_preference"`
	Facing                 *string          `json:"facing,omitempty" db:"facing" validate:"omitempty,oneof=east west north south any"`
	ReadyToMove            *bool            `json:"ready_to_move,omitempty" db:"ready_to_move"`
	ExpectedPossessionDate *string          `json:"expected_possession_date,omitempty" db:"expected_possession_date" validate:"omitempty,datetime=2006-01-02"`

	TenantType       *string `json:"tenant_type,omitempty" db:"tenant_type" validate:"omitempty,oneof=family bachelors any"`
	IsVegetarian     *bool   `json:"is_vegetarian,omitempty" db:"is_vegetarian"`
	HasPets          *bool   `json:"has_pets,omitempty" db:"has_pets"`
	VisitDate        *string `json:"visit_date,omitempty" db:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	VisitTime        *string `json:"visit_time,omitempty" db:"visit_time" validate:"omitempty,datetime=15:04"`
	PropertyCategory *string `json:"property_category,omitempty" db:"property_category" validate:"omitempty,oneof=own other_agent sandya"`
	PossessionFrom   *string `json:"possession_from,omitempty" db:"possession_from" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateLeadStatusRequest body para PATCH /api/leads/:id/status.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted site_visit negotiation booked lost followup converted closed"`
}

// LeadResponse lead en respuestas.
type LeadResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	CustomerID   string `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`

	AssignedAgent  string `json:"assigned_agent,omitempty"`
	LeadPriority   string `json:"lead_priority"`
	LeadType       string `json:"lead_type"`
	AlternatePhone string `json:"alternate_phone,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`

	PropertyType           string           `json:"property_type,omitempty"`
	Purpose                string           `json:"purpose"`
	BudgetMin              *decimal.Decimal `json:"budget_min,omitempty"`
	BudgetMax              *decimal.Decimal `json:"budget_max,omitempty"`
	BudgetLabel            string           `json:"budget_label,omitempty"` // ₹ min – ₹ max
	PreferredLocations     []string         `json:"preferred_locations,omitempty"`
	BHKRequirement         string           `json:"bhk_requirement,omitempty"`
	CarpetArea             string           `json:"carpet_area,omitempty"`
	Furnishing             string           `json:"furnishing,omitempty"`
	ParkingRequired        bool             `json:"parking_required"`
	FloorPreference        string           `json:"floor_preference,omitempty"`
	Facing                 string           `json:"facing,omitempty"`
	ReadyToMove            bool             `json:"ready_to_move"`
	ExpectedPossessionDate string           `json:"expected_possession_date,omitempty"`

	TenantType       string `json:"tenant_type,omitempty"`
	IsVegetarian     *bool  `json:"is_vegetarian,omitempty"`
	HasPets          *bool  `json:"has_pets,omitempty"`
	VisitDate        string `json:"visit_date,omitempty"`
	VisitTime        string `json:"visit_time,omitempty"`
	PropertyCategory string `json:"property_category,omitempty"`
	PossessionFrom   string `json:"possession_from,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
