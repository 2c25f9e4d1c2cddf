package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrUnauthenticated, fiber.StatusUnauthorized, CodeUnauthenticated},
		{domain.NewValidationError("Phone is required"), fiber.StatusBadRequest, CodeValidation},
		{fmt.Errorf("lead: %w", domain.ErrNotFound), fiber.StatusNotFound, CodeNotFound},
		{domain.ErrDuplicate, fiber.StatusConflict, CodeDuplicate},
		{domain.ErrNoValidLeads, fiber.StatusUnprocessableEntity, CodeNoValidLeads},
		{&domain.ProviderError{Provider: "storage", Err: errors.New("The resource already exists")}, fiber.StatusBadGateway, CodeProviderError},
		{errors.New("connection refused"), fiber.StatusInternalServerError, CodeProviderError},
	}
	for _, tc := range cases {
		status, code := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Customer name", label("customer_name"))
	assert.Equal(t, "Scheduled date", label("scheduled_at"))
	assert.Equal(t, "Follow-up type", label("follow_up_type"))
}
