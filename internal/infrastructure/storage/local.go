// Package storage guarda documentos en disco local; la API los sirve bajo /files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

var _ ports.ObjectStorage = (*Local)(nil)

// FilesPrefix ruta HTTP bajo la que se publican los archivos locales.
const FilesPrefix = "/files"

// Local almacenamiento en un directorio del servidor.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal construye el almacenamiento. baseURL es la URL pública del API.
func NewLocal(dir, baseURL string) *Local {
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir directorio raíz (para montar el handler estático).
func (l *Local) Dir() string { return l.dir }

// PutObject escribe el archivo sin sobrescribir uno existente.
func (l *Local) PutObject(_ context.Context, path string, data []byte, _ string) (string, error) {
	full, err := l.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", &domain.ProviderError{Provider: "storage", Err: err}
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", &domain.ProviderError{Provider: "storage", Err: errors.New("The resource already exists")}
		}
		return "", &domain.ProviderError{Provider: "storage", Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(full)
		return "", &domain.ProviderError{Provider: "storage", Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &domain.ProviderError{Provider: "storage", Err: err}
	}
	return l.baseURL + FilesPrefix + "/" + filepath.ToSlash(path), nil
}

// RemoveObject borra el archivo; si ya no existe no es error.
func (l *Local) RemoveObject(_ context.Context, path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &domain.ProviderError{Provider: "storage", Err: err}
	}
	return nil
}

// resolve evita rutas fuera del directorio raíz.
func (l *Local) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || clean == ".." {
		return "", domain.NewValidationError(fmt.Sprintf("Invalid file path: %s", path))
	}
	return filepath.Join(l.dir, clean), nil
}
