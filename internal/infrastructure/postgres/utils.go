package postgres

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// column describe una columna editable por PATCH.
type column struct {
	nullable bool   // "" se guarda como NULL
	cast     string // date, time, ... ("" = sin cast)
}

// columnSet columnas que un PATCH puede tocar en una tabla.
type columnSet map[string]column

// buildUpdate arma un UPDATE parcial acotado por id y user_id.
// Las columnas se recorren ordenadas para que la sentencia sea determinista.
func buildUpdate(table string, cols columnSet, touchUpdatedAt bool, patch repository.Patch, userID, id, returning string) (string, []any, error) {
	if len(patch) == 0 {
		return "", nil, domain.NewValidationError("Nothing to update")
	}
	names := make([]string, 0, len(patch))
	for name := range patch {
		if _, ok := cols[name]; !ok {
			return "", nil, domain.NewValidationError(fmt.Sprintf("Field %s cannot be updated", name))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names)+1)
	args := make([]any, 0, len(names)+2)
	for _, name := range names {
		c := cols[name]
		v := patch[name]
		if s, ok := v.(string); ok && c.nullable && s == "" {
			v = nil
		}
		args = append(args, v)
		ph := fmt.Sprintf("$%d", len(args))
		if c.cast != "" {
			ph += "::" + c.cast
		}
		sets = append(sets, name+" = "+ph)
	}
	if touchUpdatedAt {
		sets = append(sets, "updated_at = now()")
	}
	args = append(args, id, userID)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args)-1, len(args), returning)
	return query, args, nil
}
