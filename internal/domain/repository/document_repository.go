package repository

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// DocumentFilter filtros opcionales del listado de documentos.
type DocumentFilter struct {
	LeadID     string
	CustomerID string
}

// DocumentRepository define el puerto de persistencia para los metadatos de Document.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	ListByUser(ctx context.Context, userID string, filter DocumentFilter) ([]*entity.Document, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Document, error)
	Delete(ctx context.Context, userID, id string) error
}
