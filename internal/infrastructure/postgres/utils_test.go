package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los filtros opcionales sobre columnas uuid nunca deben enviar "" como
// parámetro: una cadena vacía no castea a uuid y rompería la consulta.
// Sin filtro viaja NULL y la cláusula `($n::uuid IS NULL OR col = $n)`
// lo deja pasar.
func TestOptionalID_VacioEsNull(t *testing.T) {
	assert.Nil(t, optionalID(""), "sin filtro debe viajar NULL, nunca cadena vacía")
}

func TestOptionalID_ConValorEsPuntero(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"
	got := optionalID(id)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)),
		"debe detectarse también envuelto con %%w")
	assert.False(t, isUniqueViolation(errors.New("otra cosa")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	assert.True(t, isForeignKeyViolation(pgErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete: %w", pgErr)))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
