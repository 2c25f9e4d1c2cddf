package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/session"
)

// SessionHandler estado de sesión y gate de rutas de la app móvil. Rutas públicas:
// un token ausente o vencido no es error, solo da estado unauthenticated.
type SessionHandler struct {
	authn tokenAuthenticator
}

// NewSessionHandler construye el handler.
func NewSessionHandler(authn tokenAuthenticator) *SessionHandler {
	return &SessionHandler{authn: authn}
}

func (h *SessionHandler) resolve(c *fiber.Ctx) (session.State, string) {
	var userID string
	if token, ok := bearerToken(c); ok {
		userID, _ = h.authn.Authenticate(token)
	}
	return session.Next(session.StateLoading, session.EventResolved, userID != ""), userID
}

// Get GET /api/session
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	state, userID := h.resolve(c)
	return c.JSON(dto.SessionStateResponse{State: string(state), UserID: userID})
}

// Route GET /api/session/route?path=/leads
//
// Decide qué debe hacer la app al navegar a path: render, redirect (con target) o not_found.
func (h *SessionHandler) Route(c *fiber.Ctx) error {
	path := c.Query("path", session.PathHome)
	state, _ := h.resolve(c)
	d := session.Resolve(state, path)
	return c.JSON(dto.RouteDecisionResponse{
		Path:   path,
		Action: string(d.Action),
		Target: d.Target,
		Public: d.Public,
	})
}
