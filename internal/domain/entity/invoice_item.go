package entity

import "github.com/shopspring/decimal"

// InvoiceItem línea de factura. Amount = Quantity × Rate.
// Se persiste dentro de la columna JSONB invoices.items.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}
