package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes se muestran tal cual al usuario final de la app.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicate       = errors.New("record already exists")
	ErrUnauthenticated = errors.New("Not authenticated")
	ErrInvalidOTP      = errors.New("invalid or expired code")
	ErrNoValidLeads    = errors.New("No valid leads to import")
	ErrEmptySheet      = errors.New("No data found in the sheet")
	ErrEmptyFile       = errors.New("No data found in the file")
	ErrUnreadableFile  = errors.New("Failed to parse file. Please check the format.")
	ErrInvalidSheetURL = errors.New("Invalid Google Sheets URL")
	ErrSheetFetch      = errors.New("Failed to fetch sheet. Make sure it's publicly accessible.")
)

// ValidationError falla de validación previa a cualquier llamada al proveedor.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Reason string
}

// NewValidationError construye el error con el motivo visible para el usuario.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string { return e.Reason }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ProviderError falla devuelta por un servicio externo (storage, OTP, hoja de cálculo remota).
// El mensaje del proveedor se conserva tal cual.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
