package crm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// LeadImportUseCase vista previa y confirmación de importaciones de leads.
// La vista previa no persiste nada; la confirmación revalida e inserta en una sola transacción.
type LeadImportUseCase struct {
	sheets ports.SheetReader
	tx     LeadTxRunner
	cache  ports.QueryCache
	log    zerolog.Logger
	now    Clock
}

// NewLeadImportUseCase construye el caso de uso.
func NewLeadImportUseCase(sheets ports.SheetReader, tx LeadTxRunner, cache ports.QueryCache, log zerolog.Logger) *LeadImportUseCase {
	return &LeadImportUseCase{sheets: sheets, tx: tx, cache: cache, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de hora; su zona define "hoy".
func (uc *LeadImportUseCase) WithClock(now Clock) *LeadImportUseCase {
	uc.now = now
	return uc
}

// PreviewFile parsea un .xlsx o .csv subido y valida cada fila.
func (uc *LeadImportUseCase) PreviewFile(ctx context.Context, actorID, filename string, data []byte) (*dto.ImportPreviewResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	rows, err := uc.sheets.ReadFile(filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		uc.log.Warn().Err(err).Str("file", filename).Msg("no se pudo leer la hoja subida")
		return nil, domain.NewValidationError(domain.ErrUnreadableFile.Error())
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError(domain.ErrEmptyFile.Error())
	}
	return Preview(rows), nil
}

// PreviewURL descarga una hoja pública de Google Sheets y valida cada fila.
func (uc *LeadImportUseCase) PreviewURL(ctx context.Context, actorID, sheetURL string) (*dto.ImportPreviewResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(sheetURL) == "" {
		return nil, domain.NewValidationError("Please enter a Google Sheets URL")
	}
	rows, err := uc.sheets.FetchURL(ctx, sheetURL)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError(domain.ErrEmptySheet.Error())
	}
	return Preview(rows), nil
}

// PreviewRows valida filas ya parseadas por el cliente.
func (uc *LeadImportUseCase) PreviewRows(_ context.Context, actorID string, rows []leadimport.Row) (*dto.ImportPreviewResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError(domain.ErrEmptySheet.Error())
	}
	return Preview(leadimport.Numbered(rows)), nil
}

// Preview valida las filas y arma la vista previa con sus conteos.
// Cada fila conserva su número en la hoja.
func Preview(rows []leadimport.SheetRow) *dto.ImportPreviewResponse {
	results := make([]leadimport.Result, 0, len(rows))
	out := &dto.ImportPreviewResponse{Rows: make([]dto.ImportPreviewRow, 0, len(rows))}
	for _, r := range rows {
		res := leadimport.ValidateRow(r.Values)
		results = append(results, res)
		out.Rows = append(out.Rows, dto.ImportPreviewRow{Row: r.Line, Result: res})
	}
	out.ValidCount, out.InvalidCount = leadimport.Counts(results)
	return out
}

// Confirm revalida los registros, descarta los inválidos e inserta el resto en un solo lote.
// Sin registros válidos devuelve domain.ErrNoValidLeads y no toca el proveedor.
func (uc *LeadImportUseCase) Confirm(ctx context.Context, actorID string, records []leadimport.Record) (*dto.ImportConfirmResponse, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	now := uc.now()
	leads := make([]*entity.Lead, 0, len(records))
	for _, rec := range records {
		res := leadimport.Check(rec)
		if !res.Valid {
			continue
		}
		leads = append(leads, importedLead(actorID, res.Record, now))
	}
	if len(leads) == 0 {
		return nil, domain.ErrNoValidLeads
	}

	err := uc.tx.RunLeads(ctx, func(repo repository.LeadRepository) error {
		return repo.CreateBatch(ctx, leads)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("actor", actorID).Int("rows", len(leads)).Msg("importación de leads fallida")
		return nil, &domain.ProviderError{Provider: "database", Err: fmt.Errorf("Failed to import leads: %w", err)}
	}
	invalidate(ctx, uc.cache, uc.log, actorID, ports.KeyLeads)

	return &dto.ImportConfirmResponse{
		Imported: len(leads),
		Skipped:  len(records) - len(leads),
		Message:  fmt.Sprintf("Successfully imported %d leads", len(leads)),
	}, nil
}

// importedLead lead mínimo de una importación: el resto de campos toma sus valores por defecto.
func importedLead(actorID string, rec leadimport.Record, now time.Time) *entity.Lead {
	return &entity.Lead{
		ID:           uuid.New().String(),
		UserID:       actorID,
		CustomerName: rec.CustomerName,
		Phone:        rec.Phone,
		Source:       rec.Source,
		Status:       entity.LeadStatusNew,
		Notes:        rec.Notes,
		Priority:     entity.DefaultLeadPriority,
		LeadType:     entity.DefaultLeadType,
		Purpose:      entity.DefaultLeadPurpose,
		ReadyToMove:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
