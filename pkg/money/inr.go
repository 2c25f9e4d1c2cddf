// Package money formatea montos en rupias con la agrupación de dígitos india (1,00,000).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR devuelve el monto con símbolo ₹ y fractionDigits decimales fijos.
func FormatINR(amount decimal.Decimal, fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	f, _ := amount.Round(int32(fractionDigits)).Float64()
	return sign + "₹" + inrPrinter.Sprint(number.Decimal(f, number.Scale(fractionDigits)))
}
