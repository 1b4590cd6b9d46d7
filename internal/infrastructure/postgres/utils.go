package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de PostgreSQL
// (23505). Hoy solo la dispara el índice único de users.email; el repositorio
// de usuarios la traduce al centinela de dominio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	// pgx puede envolver el error fuera de PgError según el camino de ejecución
	return strings.Contains(err.Error(), "23505")
}
