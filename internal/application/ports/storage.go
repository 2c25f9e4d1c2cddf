package ports

import "context"

// ObjectStorage almacenamiento de archivos de documentos.
type ObjectStorage interface {
	// PutObject guarda data en path y devuelve la URL pública del objeto.
	PutObject(ctx context.Context, path string, data []byte, contentType string) (url string, err error)
	RemoveObject(ctx context.Context, path string) error
}
