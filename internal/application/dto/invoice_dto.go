package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemDTO línea de factura en requests y respuestas.
type InvoiceItemDTO struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Amount, subtotal y total se recalculan en el servidor.
type CreateInvoiceRequest struct {
	CustomerID   string           `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	CustomerName string           `json:"customer_name" validate:"required"`
	Items        []InvoiceItemDTO `json:"items" validate:"required,min=1,dive"`
	Tax          decimal.Decimal  `json:"tax"`
	Discount     decimal.Decimal  `json:"discount"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
}

// InvoicePreviewRequest body para POST /api/invoices/preview.
type InvoicePreviewRequest struct {
	Items    []InvoiceItemDTO `json:"items" validate:"dive"`
	Tax      decimal.Decimal  `json:"tax"`
	Discount decimal.Decimal  `json:"discount"`
}

// InvoiceTotalsResponse totales calculados.
type InvoiceTotalsResponse struct {
	Items      []InvoiceItemDTO `json:"items"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
	Tax        decimal.Decimal  `json:"tax"`
	Discount   decimal.Decimal  `json:"discount"`
	Total      decimal.Decimal  `json:"total"`
	TotalLabel string           `json:"total_label"`
}

// UpdatePaymentStatusRequest body para PATCH /api/invoices/:id/payment-status.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid overdue"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	CustomerID    string           `json:"customer_id,omitempty"`
	CustomerName  string           `json:"customer_name"`
	Items         []InvoiceItemDTO `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	Discount      decimal.Decimal  `json:"discount"`
	Total         decimal.Decimal  `json:"total"`
	TotalLabel    string           `json:"total_label"`
	PaymentStatus string           `json:"payment_status"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PaymentsResponse respuesta de GET /api/payments.
// Los totales se calculan sobre todas las facturas, no solo las filtradas.
type PaymentsResponse struct {
	Invoices           []InvoiceResponse `json:"invoices"`
	TotalPending       decimal.Decimal   `json:"total_pending"`
	TotalReceived      decimal.Decimal   `json:"total_received"`
	TotalPendingLabel  string            `json:"total_pending_label"`
	TotalReceivedLabel string            `json:"total_received_label"`
}
