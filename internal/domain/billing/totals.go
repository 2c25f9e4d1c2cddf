// Package billing contiene la aritmética de facturas (servicio de dominio puro).
package billing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// Totals montos derivados de una factura.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// LineAmount Amount = Quantity × Rate.
func LineAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// RecomputeItems devuelve una copia de las líneas con Amount recalculado.
// El Amount enviado por el cliente se ignora.
func RecomputeItems(items []entity.InvoiceItem) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, len(items))
	for i, it := range items {
		it.Amount = LineAmount(it.Quantity, it.Rate)
		out[i] = it
	}
	return out
}

// Compute Subtotal = Σ Amount; Total = Subtotal + Tax − Discount.
// Las líneas deben venir ya recalculadas (RecomputeItems).
func Compute(items []entity.InvoiceItem, tax, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}

// NewInvoiceID genera el ID visible de la factura a partir del instante de creación:
// "INV-" + milisegundos Unix en base 36, en mayúsculas.
func NewInvoiceID(now time.Time) string {
	return "INV-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}
