package postgres

import (
	"context"
	"fmt"

	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

var _ repository.ReferenceChecker = (*RefChecker)(nil)

// refTables lista blanca de destinos de referencia y su tabla. Un destino
// fuera de la lista es un error de programación, nunca entrada del cliente.
var refTables = map[repository.Ref]string{
	repository.RefCompany:  "companies",
	repository.RefUser:     "users",
	repository.RefVehicle:  "vehicles",
	repository.RefDocument: "documents",
}

// RefChecker comprueba existencia de filas referenciadas por id.
type RefChecker struct {
	db DB
}

// NewReferenceChecker construye el verificador de referencias.
func NewReferenceChecker(db DB) *RefChecker {
	return &RefChecker{db: db}
}

// Exists indica si existe una fila con ese id en la tabla del destino.
func (r *RefChecker) Exists(ctx context.Context, target repository.Ref, id string) (bool, error) {
	table, ok := refTables[target]
	if !ok {
		return false, fmt.Errorf("destino de referencia desconocido: %q", string(target))
	}
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table)
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s reference: %w", string(target), err)
	}
	return exists, nil
}
