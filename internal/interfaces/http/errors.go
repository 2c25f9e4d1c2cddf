package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

// Códigos de error de la API.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeValidation      = "VALIDATION"
	CodeInvalidBody     = "INVALID_BODY"
	CodeInvalidOTP      = "INVALID_OTP"
	CodeNotFound        = "NOT_FOUND"
	CodeDuplicate       = "DUPLICATE"
	CodeNoValidLeads    = "NO_VALID_LEADS"
	CodeProviderError   = "PROVIDER_ERROR"
)

// respondError traduce un error de caso de uso a status HTTP + ErrorResponse.
// Los mensajes del proveedor se devuelven tal cual.
func respondError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	msg := err.Error()
	if code == CodeUnauthenticated {
		msg = domain.ErrUnauthenticated.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func classify(err error) (int, string) {
	var verr *domain.ValidationError
	var perr *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, CodeUnauthenticated
	case errors.As(err, &verr), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrInvalidOTP):
		return fiber.StatusBadRequest, CodeInvalidOTP
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, CodeDuplicate
	case errors.Is(err, domain.ErrNoValidLeads):
		return fiber.StatusUnprocessableEntity, CodeNoValidLeads
	case errors.As(err, &perr):
		return fiber.StatusBadGateway, CodeProviderError
	default:
		return fiber.StatusInternalServerError, CodeProviderError
	}
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, body demasiado grande, panics recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code := CodeProviderError
		switch ferr.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			code = CodeInvalidBody
		case fiber.StatusUnauthorized:
			code = CodeUnauthenticated
		}
		return c.Status(ferr.Code).JSON(dto.ErrorResponse{Code: code, Message: ferr.Message})
	}
	return respondError(c, err)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "Invalid request body"})
}
