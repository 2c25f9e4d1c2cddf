package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/homeexotica-crm/internal/application/billing"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

func TestGenerateInvoicePDF(t *testing.T) {
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		ID:           "INV-MGJ6K3CW",
		CustomerName: "Asha",
		Items: []entity.InvoiceItem{
			{Description: "Booking amount", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(500), Amount: decimal.NewFromInt(1000)},
		},
		Subtotal:      decimal.NewFromInt(1000),
		Tax:           decimal.NewFromInt(50),
		Discount:      decimal.NewFromInt(20),
		Total:         decimal.NewFromInt(1030),
		PaymentStatus: entity.PaymentStatusPending,
		DueDate:       &due,
		CreatedAt:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}

	data, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv, appbilling.Issuer{Name: "Home Exotica", Phone: "+919876543210"})
	require.NoError(t, err)
	assert.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", formatQuantity(decimal.NewFromInt(2)))
	assert.Equal(t, "1.5", formatQuantity(decimal.RequireFromString("1.5")))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "Rs. 1,030.00", amount(decimal.NewFromInt(1030)))
	assert.Equal(t, "-Rs. 20.00", amount(decimal.NewFromInt(-20)))
}
