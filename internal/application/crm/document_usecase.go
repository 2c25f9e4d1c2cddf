package crm

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// FileUpload archivo recibido en el formulario.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// DocumentUseCase casos de uso de documentos: el objeto va al storage y los metadatos a la tabla.
type DocumentUseCase struct {
	repo    repository.DocumentRepository
	storage ports.ObjectStorage
	cache   ports.QueryCache
	log     zerolog.Logger
	now     Clock
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, storage ports.ObjectStorage, cache ports.QueryCache, log zerolog.Logger) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, storage: storage, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora; su zona define "hoy".
func (uc *DocumentUseCase) WithClock(now Clock) *DocumentUseCase {
	uc.now = now
	return uc
}

// List documentos del actor, opcionalmente de un lead o cliente.
func (uc *DocumentUseCase) List(ctx context.Context, actorID, leadID, customerID string) ([]dto.DocumentResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	filter := repository.DocumentFilter{LeadID: strings.TrimSpace(leadID), CustomerID: strings.TrimSpace(customerID)}
	key := ports.Key(ports.KeyDocuments, actorID)
	if filter.LeadID != "" || filter.CustomerID != "" {
		key = ports.Key(ports.KeyDocuments, actorID, "lead", filter.LeadID, "customer", filter.CustomerID)
	}
	var list []dto.DocumentResponse
	err := uc.cache.GetOrFetch(ctx, key, &list, func(ctx context.Context) (any, error) {
		rows, err := uc.repo.ListByUser(ctx, actorID, filter)
		if err != nil {
			return nil, err
		}
		out := make([]dto.DocumentResponse, 0, len(rows))
		for _, d := range rows {
			out = append(out, dto.FromDocument(d))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Upload guarda el archivo en <actor>/<unix-millis>.<ext> y luego inserta la fila.
// Si la inserción falla se intenta borrar el objeto recién subido.
func (uc *DocumentUseCase) Upload(ctx context.Context, actorID string, in dto.UploadDocumentRequest, file *FileUpload) (*dto.DocumentResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if file == nil || len(file.Data) == 0 {
		return nil, domain.NewValidationError("Please select a file to upload")
	}
	name := strings.TrimSpace(in.DocumentName)
	if name == "" {
		return nil, domain.NewValidationError("Please enter a document name")
	}

	now := uc.now()
	filePath := ObjectPath(actorID, file.Name, now)
	url, err := uc.storage.PutObject(ctx, filePath, file.Data, file.ContentType)
	if err != nil {
		return nil, err
	}

	doc := &entity.Document{
		ID:           uuid.New().String(),
		UserID:       actorID,
		LeadID:       strings.TrimSpace(in.LeadID),
		CustomerID:   strings.TrimSpace(in.CustomerID),
		DocumentType: orDefault(in.DocumentType, entity.DocumentTypeOther),
		DocumentName: name,
		FileURL:      url,
		FilePath:     filePath,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		if rmErr := uc.storage.RemoveObject(ctx, filePath); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", filePath).Msg("objeto huérfano en storage")
		}
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyDocuments)
	out := dto.FromDocument(doc)
	return &out, nil
}

// Delete borra primero el objeto del storage y después la fila.
func (uc *DocumentUseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	doc, err := uc.repo.GetByID(ctx, actorID, id)
	if err != nil {
		return err
	}
	if err := uc.storage.RemoveObject(ctx, doc.FilePath); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, actorID, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyDocuments)
	return nil
}

// ObjectPath ruta del objeto: <actor>/<unix-millis>.<extensión del archivo original>.
func ObjectPath(actorID, filename string, now time.Time) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%d.%s", actorID, now.UnixMilli(), strings.ToLower(ext))
}
