package postgres

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

func TestBuildUpdate_OrdenaColumnasYAcotaPorActor(t *testing.T) {
	patch := repository.Patch{"status": "booked", "notes": "llamar el lunes", "visit_date": "2026-10-20"}
	query, args, err := buildUpdate("leads", leadPatchColumns, true, patch, "user-1", "lead-1", "id")
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE leads SET notes = $1, status = $2, visit_date = $3::date, updated_at = now() WHERE id = $4 AND user_id = $5 RETURNING id",
		query)
	assert.Equal(t, []any{"llamar el lunes", "booked", "2026-10-20", "lead-1", "user-1"}, args)
}

func TestBuildUpdate_TextoVacioEnColumnaOpcional_EsNull(t *testing.T) {
	_, args, err := buildUpdate("customers", customerPatchColumns, true, repository.Patch{"email": ""}, "u", "c", "id")
	require.NoError(t, err)
	assert.Nil(t, args[0])
}

func TestBuildUpdate_ColumnaNoEditable(t *testing.T) {
	_, _, err := buildUpdate("customers", customerPatchColumns, true, repository.Patch{"user_id": "otro"}, "u", "c", "id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBuildUpdate_PatchVacio(t *testing.T) {
	_, _, err := buildUpdate("follow_ups", followUpPatchColumns, false, repository.Patch{}, "u", "f", "id")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildUpdate_SinUpdatedAt(t *testing.T) {
	query, _, err := buildUpdate("follow_ups", followUpPatchColumns, false, repository.Patch{"completed": true}, "u", "f", "id")
	require.NoError(t, err)
	assert.NotContains(t, query, "updated_at")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestMigrationNames_Ordenadas(t *testing.T) {
	names := MigrationNames()
	require.NotEmpty(t, names)
	assert.True(t, strings.HasSuffix(names[0], "0001_users.sql"))
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
