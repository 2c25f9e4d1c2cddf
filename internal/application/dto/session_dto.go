package dto

// SessionStateResponse respuesta de GET /api/session.
type SessionStateResponse struct {
	State  string `json:"state"` // loading | unauthenticated | authenticated
	UserID string `json:"user_id,omitempty"`
}

// RouteDecisionResponse respuesta de GET /api/session/route.
type RouteDecisionResponse struct {
	Path   string `json:"path"`
	Action string `json:"action"` // render | redirect | loading | not_found
	Target string `json:"target,omitempty"`
	Public bool   `json:"public"`
}
