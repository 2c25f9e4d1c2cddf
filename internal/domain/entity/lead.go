package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes de un lead.
const (
	LeadSourceWebsite     = "website"
	LeadSourceWhatsApp    = "whatsapp"
	LeadSourceFacebook    = "facebook"
	LeadSourceInstagram   = "instagram"
	LeadSourceWalkIn      = "walkin"
	LeadSourceReferral    = "referral"
	LeadSourceBroker      = "broker"
	LeadSourcePhone       = "phone"
	LeadSourceManual      = "manual"
	LeadSourceMagicBricks = "magicbricks"
	LeadSourceCommonFloor = "commonfloor"
	LeadSource99Acres     = "99acres"
	LeadSourceHousing     = "housing"
	LeadSourceSulekha     = "sulekha"
)

// Estados de un lead. Cualquier estado puede pasar a cualquier otro.
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusSiteVisit   = "site_visit"
	LeadStatusNegotiation = "negotiation"
	LeadStatusBooked      = "booked"
	LeadStatusLost        = "lost"
	LeadStatusFollowUp    = "followup"
	LeadStatusConverted   = "converted"
	LeadStatusClosed      = "closed"
)

// LeadStatuses conjunto finito de estados válidos, en el orden de las pestañas.
var LeadStatuses = []string{
	LeadStatusNew, LeadStatusContacted, LeadStatusSiteVisit, LeadStatusNegotiation,
	LeadStatusBooked, LeadStatusLost, LeadStatusFollowUp, LeadStatusConverted, LeadStatusClosed,
}

// IsLeadStatus informa si s pertenece al conjunto de estados.
func IsLeadStatus(s string) bool {
	for _, st := range LeadStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Valores por defecto al crear un lead.
const (
	DefaultLeadPriority = "warm"
	DefaultLeadType     = "buyer"
	DefaultLeadPurpose  = "buy"
)

// Lead representa una consulta de propiedad (prospecto).
type Lead struct {
	ID           string
	UserID       string
	CustomerID   string
	CustomerName string
	Phone        string
	Email        string
	Source       string
	Status       string
	Notes        string

	AssignedAgent  string
	Priority       string // hot | warm | cold
	LeadType       string // buyer | seller | tenant | investor
	AlternatePhone string
	Address        string
	City           string
	Occupation     string
	CompanyName    string

	// Requerimiento de la propiedad
	PropertyType           string
	Purpose                string // buy | rent | lease
	BudgetMin              *decimal.Decimal
	BudgetMax              *decimal.Decimal
	PreferredLocations     []string
	BHKRequirement         string
	CarpetArea             string
	Furnishing             string
	ParkingRequired        bool
	FloorPreference        string
	Facing                 string
	ReadyToMove            bool
	ExpectedPossessionDate string // YYYY-MM-DD

	// Campos de arriendo
	TenantType       string
	IsVegetarian     *bool
	HasPets          *bool
	VisitDate        string // YYYY-MM-DD
	VisitTime        string // HH:MM
	PropertyCategory string
	PossessionFrom   string // YYYY-MM-DD

	CreatedAt time.Time
	UpdatedAt time.Time
}
