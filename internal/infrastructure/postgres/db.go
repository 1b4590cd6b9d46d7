// Package postgres implementa los puertos de persistencia sobre PostgreSQL
// usando pgx. Cada repositorio opera sobre la interfaz DB, satisfecha tanto
// por el pool como por una transacción, así el mismo código sirve dentro y
// fuera del UnitOfWork.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// DB subconjunto común de *pgxpool.Pool y pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// appendFilter añade el fragmento del filtro de visibilidad a una cláusula
// WHERE ya iniciada, renumerando sus placeholders a continuación de args.
func appendFilter(query string, args []any, f scope.Filter) (string, []any) {
	frag, fargs := f.SQL(len(args) + 1)
	if frag == "" {
		return query, args
	}
	return query + " AND " + frag, append(args, fargs...)
}
