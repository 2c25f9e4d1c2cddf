// Package leadimport convierte filas sueltas de una hoja de cálculo en leads candidatos.
//
// Cada campo destino tiene una lista ordenada de alias de columna; se toma el primer
// valor no vacío. La validación es pura: no toca red ni base de datos.
package leadimport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/homeexotica-crm/internal/domain/entity"
)

// Motivos de rechazo. "Missing name" tiene precedencia sobre "Missing phone".
const (
	ReasonMissingName  = "Missing name"
	ReasonMissingPhone = "Missing phone"
)

// Alias de columna por campo, en orden de preferencia.
var (
	NameAliases   = []string{"Name", "name", "Customer Name", "customer_name"}
	PhoneAliases  = []string{"Phone", "phone", "Phone Number", "phone_number"}
	SourceAliases = []string{"Source", "source"}
	NotesAliases  = []string{"Notes", "notes"}
)

// AllowedSources orígenes aceptados en una importación; cualquier otro pasa a "manual".
var AllowedSources = []string{
	entity.LeadSourceWhatsApp,
	entity.LeadSourcePhone,
	entity.LeadSourceWebsite,
	entity.LeadSourceInstagram,
	entity.LeadSourceManual,
}

// Row fila cruda: encabezado -> valor (string, número, bool, ...).
type Row map[string]any

// FirstDataLine número de la primera fila de datos (la 1 es el encabezado).
const FirstDataLine = 2

// SheetRow fila de la hoja con su número de fila original, que sobrevive a las
// filas vacías omitidas al leer.
type SheetRow struct {
	Line   int
	Values Row
}

// Numbered numera filas contiguas desde FirstDataLine (filas enviadas ya parseadas).
func Numbered(rows []Row) []SheetRow {
	out := make([]SheetRow, len(rows))
	for i, r := range rows {
		out[i] = SheetRow{Line: i + FirstDataLine, Values: r}
	}
	return out
}

// Record lead candidato ya normalizado.
type Record struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Source       string `json:"source"`
	Notes        string `json:"notes,omitempty"`
}

// Result resultado etiquetado de validar una fila: {valid, record} o {invalid, reason}.
// Record se llena siempre para poder mostrar la vista previa.
type Result struct {
	Record
	Valid  bool   `json:"valid"`
	Reason string `json:"error,omitempty"`
}

// ValidateRow aplica coalescencia de alias, normaliza el origen y decide la validez.
func ValidateRow(row Row) Result {
	rec := Record{
		CustomerName: coalesce(row, NameAliases),
		Phone:        coalesce(row, PhoneAliases),
		Source:       NormalizeSource(coalesce(row, SourceAliases)),
		Notes:        coalesce(row, NotesAliases),
	}
	return Check(rec)
}

// Check decide la validez de un registro ya coalescido (usado también al confirmar).
func Check(rec Record) Result {
	rec.CustomerName = strings.TrimSpace(rec.CustomerName)
	rec.Phone = strings.TrimSpace(rec.Phone)
	rec.Source = NormalizeSource(rec.Source)
	switch {
	case rec.CustomerName == "":
		return Result{Record: rec, Reason: ReasonMissingName}
	case rec.Phone == "":
		return Result{Record: rec, Reason: ReasonMissingPhone}
	}
	return Result{Record: rec, Valid: true}
}

// ValidateRows valida todas las filas y devuelve un arreglo paralelo de resultados.
func ValidateRows(rows []Row) []Result {
	out := make([]Result, 0, len(rows))
	for _, r := range rows {
		out = append(out, ValidateRow(r))
	}
	return out
}

// Counts cuenta filas válidas e inválidas.
func Counts(results []Result) (valid, invalid int) {
	for _, r := range results {
		if r.Valid {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}

// ValidRecords filtra solo los registros válidos, conservando el orden.
func ValidRecords(results []Result) []Record {
	out := make([]Record, 0, len(results))
	for _, r := range results {
		if r.Valid {
			out = append(out, r.Record)
		}
	}
	return out
}

// NormalizeSource pasa a minúsculas y limita el origen a AllowedSources.
func NormalizeSource(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, allowed := range AllowedSources {
		if s == allowed {
			return s
		}
	}
	return entity.LeadSourceManual
}

// coalesce devuelve el primer valor no vacío entre los alias: primero coincidencia
// exacta del encabezado y luego sin distinguir mayúsculas.
func coalesce(row Row, aliases []string) string {
	for _, a := range aliases {
		if v, ok := row[a]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	for _, a := range aliases {
		for k, v := range row {
			if strings.EqualFold(strings.TrimSpace(k), a) {
				if s := stringify(v); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// stringify convierte el valor de una celda en texto; los números no usan notación exponencial.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == 0 || math.IsNaN(t) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return stringify(float64(t))
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	case int64:
		if t == 0 {
			return ""
		}
		return strconv.FormatInt(t, 10)
	case bool:
		if !t {
			return ""
		}
		return "true"
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
