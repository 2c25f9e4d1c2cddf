package ports

import (
	"context"
	"strings"
)

// Raíces de clave del cache de consultas. Cada clave se completa con el actor: "leads:<actor>".
const (
	KeyCustomers      = "customers"
	KeyLeads          = "leads"
	KeyFollowUps      = "follow_ups"
	KeyDocuments      = "documents"
	KeyInvoices       = "invoices"
	KeyDashboardStats = "dashboard_stats"
)

// FetchFunc trae el valor fresco desde el proveedor cuando la clave no está en cache.
type FetchFunc func(ctx context.Context) (any, error)

// QueryCache cache de lecturas por clave. Las escrituras nunca parchean el cache:
// solo lo invalidan tras un éxito.
type QueryCache interface {
	// GetOrFetch decodifica en dest el valor cacheado o, si falta, llama a fetch,
	// lo guarda y lo decodifica en dest. Los errores de fetch no se cachean.
	GetOrFetch(ctx context.Context, key string, dest any, fetch FetchFunc) error
	// Invalidate borra la clave y todas sus variantes ("<key>:...").
	Invalidate(ctx context.Context, key string) error
}

// Key arma la clave "<root>:<actor>[:<parte>...]".
func Key(root, actor string, parts ...string) string {
	return strings.Join(append([]string{root, actor}, parts...), ":")
}

// RootKey devuelve "<root>:<actor>" de una clave completa; es la unidad de invalidación.
func RootKey(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 2 {
		return key
	}
	return parts[0] + ":" + parts[1]
}

// CoversKey informa si invalidar prefix debe borrar key.
func CoversKey(prefix, key string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+":")
}
