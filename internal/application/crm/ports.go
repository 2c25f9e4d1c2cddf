// Package crm contiene los casos de uso de clientes, leads, seguimientos, documentos
// y la importación de leads desde hojas de cálculo.
//
// Cada operación exige un actor autenticado antes de tocar el proveedor. Las lecturas
// pasan por el cache de consultas; toda escritura exitosa invalida la clave de la entidad
// y el resumen del dashboard.
package crm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// LeadTxRunner ejecuta fn dentro de una transacción con el repo de leads atado a ella.
type LeadTxRunner interface {
	RunLeads(ctx context.Context, fn func(leads repository.LeadRepository) error) error
}

// Clock fuente de la hora actual (inyectable en tests).
type Clock func() time.Time

func requireActor(actorID string) error {
	if actorID == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

// invalidate borra las claves de las entidades tocadas y el resumen del dashboard.
// La escritura ya ocurrió: un fallo del cache solo se registra.
func invalidate(ctx context.Context, cache ports.QueryCache, log zerolog.Logger, actorID string, roots ...string) {
	for _, root := range append(roots, ports.KeyDashboardStats) {
		key := ports.Key(root, actorID)
		if err := cache.Invalidate(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo invalidar el cache")
		}
	}
}
