// Package session modela el estado de sesión del cliente y la tabla de rutas protegidas.
package session

import "strings"

// State estado de la sesión.
type State string

const (
	StateLoading         State = "loading"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Action resultado de evaluar una ruta.
type Action string

const (
	ActionRender   Action = "render"
	ActionRedirect Action = "redirect"
	ActionLoading  Action = "loading"
	ActionNotFound Action = "not_found"
)

// Rutas conocidas.
const (
	PathAuth = "/auth"
	PathHome = "/"
)

// ProtectedPaths páginas que exigen sesión.
var ProtectedPaths = []string{
	PathHome, "/customers", "/leads", "/follow-ups", "/invoices", "/payments", "/documents", "/more",
}

// Decision qué hacer con una ruta en un estado dado.
type Decision struct {
	Action Action
	Target string // destino de la redirección
	Public bool
}

// Event transición de la máquina de estados.
type Event string

const (
	EventResolved  Event = "resolved"   // se resolvió la sesión inicial
	EventSignedIn  Event = "signed_in"  // OTP verificado
	EventSignedOut Event = "signed_out" // cierre de sesión o token vencido
)

// Next aplica un evento. resolved usa hasSession para decidir el destino; el resto lo ignora.
func Next(s State, ev Event, hasSession bool) State {
	switch ev {
	case EventResolved:
		if s != StateLoading {
			return s
		}
		if hasSession {
			return StateAuthenticated
		}
		return StateUnauthenticated
	case EventSignedIn:
		return StateAuthenticated
	case EventSignedOut:
		return StateUnauthenticated
	}
	return s
}

// IsPublic indica si la ruta no requiere sesión.
func IsPublic(path string) bool {
	return normalize(path) == PathAuth
}

// IsKnown indica si la ruta está en la tabla.
func IsKnown(path string) bool {
	p := normalize(path)
	if p == PathAuth {
		return true
	}
	for _, known := range ProtectedPaths {
		if p == known {
			return true
		}
	}
	return false
}

// Resolve decide la acción para path en el estado s:
// loading muestra el indicador en cualquier ruta; sin sesión, las rutas protegidas
// (incluida la de no encontrado) redirigen a /auth; con sesión, /auth redirige a /.
// No se preserva la ruta original al redirigir.
func Resolve(s State, path string) Decision {
	p := normalize(path)
	public := p == PathAuth
	switch {
	case s == StateLoading:
		return Decision{Action: ActionLoading, Public: public}
	case s == StateUnauthenticated && !public:
		return Decision{Action: ActionRedirect, Target: PathAuth}
	case s == StateAuthenticated && public:
		return Decision{Action: ActionRedirect, Target: PathHome, Public: true}
	case !IsKnown(p):
		return Decision{Action: ActionNotFound}
	}
	return Decision{Action: ActionRender, Public: public}
}

func normalize(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return PathHome
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = PathHome
		}
	}
	return p
}
