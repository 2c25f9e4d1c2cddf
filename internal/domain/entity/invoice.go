package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// Invoice factura de una operación inmobiliaria.
// Total = Subtotal + Tax - Discount.
type Invoice struct {
	ID            string // INV-<base36 del timestamp>
	UserID        string
	CustomerID    string
	CustomerName  string
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentStatus string
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPaymentStatus indica si s es un estado de pago conocido.
func IsPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}
