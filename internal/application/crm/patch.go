package crm

import (
	"reflect"
	"strings"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// patchFields convierte un request PATCH (campos puntero con tag db) en columnas a actualizar.
// Los punteros nil no se tocan; los textos se recortan.
func patchFields(req any) repository.Patch {
	out := repository.Patch{}
	v := reflect.Indirect(reflect.ValueOf(req))
	if v.Kind() != reflect.Struct {
		return out
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		col := t.Field(i).Tag.Get("db")
		if col == "" || col == "-" {
			continue
		}
		f := v.Field(i)
		if f.Kind() != reflect.Pointer || f.IsNil() {
			continue
		}
		val := f.Elem().Interface()
		if s, ok := val.(string); ok {
			val = strings.TrimSpace(s)
		}
		out[col] = val
	}
	return out
}

// required columna obligatoria y el mensaje a mostrar si el patch la vacía.
type required struct {
	column  string
	message string
}

// requireNonEmpty rechaza patches que vacían columnas obligatorias, en el orden dado.
func requireNonEmpty(patch repository.Patch, checks ...required) error {
	for _, c := range checks {
		if v, ok := patch[c.column]; ok {
			if s, isStr := v.(string); isStr && s == "" {
				return domain.NewValidationError(c.message)
			}
		}
	}
	return nil
}
