package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/domain/billing"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// items [{qty:2, rate:500}], tax=50, discount=20 -> subtotal=1000, total=1030.
func TestCompute_FacturaDeReferencia(t *testing.T) {
	items := billing.RecomputeItems([]entity.InvoiceItem{
		{Description: "Booking amount", Quantity: d("2"), Rate: d("500")},
	})
	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.Equal(d("1000")))

	tot := billing.Compute(items, d("50"), d("20"))
	assert.True(t, tot.Subtotal.Equal(d("1000")), "subtotal: %s", tot.Subtotal)
	assert.True(t, tot.Total.Equal(d("1030")), "total: %s", tot.Total)
}

func TestCompute_TotalIgualSubtotalMasTaxMenosDescuento(t *testing.T) {
	cases := []struct {
		items    []entity.InvoiceItem
		tax, dis string
	}{
		{nil, "0", "0"},
		{[]entity.InvoiceItem{{Quantity: d("1.5"), Rate: d("199.99")}}, "18.00", "0.01"},
		{[]entity.InvoiceItem{{Quantity: d("3"), Rate: d("0.1")}, {Quantity: d("7"), Rate: d("12345.67")}}, "0", "1000"},
	}
	for _, c := range cases {
		items := billing.RecomputeItems(c.items)
		tot := billing.Compute(items, d(c.tax), d(c.dis))
		assert.True(t, tot.Total.Equal(tot.Subtotal.Add(d(c.tax)).Sub(d(c.dis))))
	}
}

func TestRecomputeItems_IgnoraAmountDelCliente(t *testing.T) {
	in := []entity.InvoiceItem{{Quantity: d("2"), Rate: d("10"), Amount: d("999")}}
	out := billing.RecomputeItems(in)
	assert.True(t, out[0].Amount.Equal(d("20")))
	assert.True(t, in[0].Amount.Equal(d("999")), "no modifica la entrada")
}

func TestNewInvoiceID(t *testing.T) {
	at := time.UnixMilli(1760000000000)
	id := billing.NewInvoiceID(at)
	assert.Equal(t, "INV-MGJ6K3CW", id)
	assert.NotEqual(t, id, billing.NewInvoiceID(at.Add(time.Millisecond)))
}
