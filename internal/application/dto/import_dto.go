package dto

import "github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"

// ImportPreviewRequest body JSON para POST /api/leads/import/preview.
// Se envía URL de Google Sheets o filas ya parseadas; el archivo subido va por multipart.
type ImportPreviewRequest struct {
	URL  string           `json:"url,omitempty"`
	Rows []leadimport.Row `json:"rows,omitempty"`
}

// ImportPreviewRow fila de la vista previa. Row es el número de fila en la hoja (1 = encabezado).
type ImportPreviewRow struct {
	Row int `json:"row"`
	leadimport.Result
}

// ImportPreviewResponse vista previa con conteos.
type ImportPreviewResponse struct {
	Rows         []ImportPreviewRow `json:"rows"`
	ValidCount   int                `json:"valid_count"`
	InvalidCount int                `json:"invalid_count"`
}

// ImportConfirmRequest body para POST /api/leads/import/confirm.
type ImportConfirmRequest struct {
	Records []leadimport.Record `json:"records" validate:"required"`
}

// ImportConfirmResponse resultado de la importación.
type ImportConfirmResponse struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}
