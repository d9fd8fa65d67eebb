package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// optionalID convierte "" en NULL para filtros opcionales sobre columnas uuid.
// Un parámetro texto vacío no es un uuid válido: el filtro se escribe
// `($n::uuid IS NULL OR col = $n)` y recibe nil cuando no hay filtro.
func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
