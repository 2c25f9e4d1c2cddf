package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/homeexotica-crm/internal/application/session"
)

func TestResolve_Loading_EnCualquierRuta(t *testing.T) {
	for _, p := range []string{"/", "/auth", "/leads", "/nope"} {
		assert.Equal(t, session.ActionLoading, session.Resolve(session.StateLoading, p).Action, p)
	}
}

func TestResolve_SinSesion_RedirigeAAuth(t *testing.T) {
	for _, p := range append(append([]string{}, session.ProtectedPaths...), "/desconocida") {
		d := session.Resolve(session.StateUnauthenticated, p)
		assert.Equal(t, session.ActionRedirect, d.Action, p)
		assert.Equal(t, "/auth", d.Target, p)
	}
	assert.Equal(t, session.ActionRender, session.Resolve(session.StateUnauthenticated, "/auth").Action)
}

func TestResolve_ConSesion(t *testing.T) {
	d := session.Resolve(session.StateAuthenticated, "/auth")
	assert.Equal(t, session.ActionRedirect, d.Action)
	assert.Equal(t, "/", d.Target)

	assert.Equal(t, session.ActionRender, session.Resolve(session.StateAuthenticated, "/leads").Action)
	assert.Equal(t, session.ActionRender, session.Resolve(session.StateAuthenticated, "/follow-ups/").Action)
	assert.Equal(t, session.ActionRender, session.Resolve(session.StateAuthenticated, "/payments?status=paid").Action)
	assert.Equal(t, session.ActionNotFound, session.Resolve(session.StateAuthenticated, "/reports").Action)
}

func TestNext(t *testing.T) {
	assert.Equal(t, session.StateAuthenticated, session.Next(session.StateLoading, session.EventResolved, true))
	assert.Equal(t, session.StateUnauthenticated, session.Next(session.StateLoading, session.EventResolved, false))
	assert.Equal(t, session.StateAuthenticated, session.Next(session.StateUnauthenticated, session.EventSignedIn, false))
	assert.Equal(t, session.StateUnauthenticated, session.Next(session.StateAuthenticated, session.EventSignedOut, true))
	// resolved fuera de loading no cambia nada.
	assert.Equal(t, session.StateAuthenticated, session.Next(session.StateAuthenticated, session.EventResolved, false))
}
