package entity

import "time"

// Tipos de documento aceptados.
const (
	DocumentTypeAadhar           = "aadhar"
	DocumentTypePAN              = "pan"
	DocumentTypeAddressProof     = "address_proof"
	DocumentTypeBookingForm      = "booking_form"
	DocumentTypeSaleAgreement    = "sale_agreement"
	DocumentTypePaymentReceipt   = "payment_receipt"
	DocumentTypePropertyDocument = "property_document"
	DocumentTypeOther            = "other"
)

// Document metadatos de un archivo subido al almacenamiento de objetos.
// FilePath es la ruta dentro del bucket; FileURL la URL pública.
type Document struct {
	ID           string
	UserID       string
	LeadID       string
	CustomerID   string
	DocumentType string
	DocumentName string
	FileURL      string
	FilePath     string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
