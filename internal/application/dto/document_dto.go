package dto

import "time"

// UploadDocumentRequest campos de formulario de POST /api/documents (el archivo va en "file").
type UploadDocumentRequest struct {
	LeadID       string `form:"lead_id" validate:"omitempty,uuid"`
	CustomerID   string `form:"customer_id" validate:"omitempty,uuid"`
	DocumentType string `form:"document_type" validate:"omitempty,oneof=aadhar pan address_proof booking_form sale_agreement payment_receipt property_document other"`
	DocumentName string `form:"document_name"`
	Notes        string `form:"notes"`
}

// DocumentResponse documento en respuestas.
type DocumentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	LeadID       string    `json:"lead_id,omitempty"`
	CustomerID   string    `json:"customer_id,omitempty"`
	DocumentType string    `json:"document_type"`
	DocumentName string    `json:"document_name"`
	FileURL      string    `json:"file_url"`
	FilePath     string    `json:"file_path"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
