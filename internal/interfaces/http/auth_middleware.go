package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

// LocalUserID key de Fiber Locals con el actor autenticado.
const LocalUserID = "user_id"

// tokenAuthenticator contrato mínimo del middleware; lo implementa *auth.AuthUseCase.
type tokenAuthenticator interface {
	Authenticate(token string) (string, error)
}

// AuthMiddleware valida el Bearer Token y deja el actor en c.Locals.
// Sin token válido responde 401 sin llegar al handler.
func AuthMiddleware(authn tokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return unauthenticated(c)
		}
		userID, err := authn.Authenticate(token)
		if err != nil {
			return unauthenticated(c)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// bearerToken extrae el token de "Authorization: Bearer <token>".
func bearerToken(c *fiber.Ctx) (string, bool) {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    CodeUnauthenticated,
		Message: domain.ErrUnauthenticated.Error(),
	})
}

// GetUserID devuelve el actor del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// RequestLogger registra método, ruta, status y latencia de cada request.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// El ErrorHandler todavía no escribió la respuesta.
			status, _ = classify(err)
			var ferr *fiber.Error
			if errors.As(err, &ferr) {
				status = ferr.Code
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
