package ports

import (
	"context"

	"github.com/jhoicas/homeexotica-crm/internal/domain/leadimport"
)

// SheetReader convierte una hoja de cálculo en filas crudas (encabezado -> valor),
// cada una con su número de fila en la hoja. Solo se lee la primera hoja; la primera
// fila es el encabezado.
type SheetReader interface {
	// ReadFile parsea un archivo subido; el formato se decide por la extensión de filename.
	ReadFile(filename string, data []byte) ([]leadimport.SheetRow, error)
	// FetchURL descarga una hoja pública de Google Sheets como CSV y la parsea.
	FetchURL(ctx context.Context, sheetURL string) ([]leadimport.SheetRow, error)
}
