package repository

import "context"

// Ref identifica un tipo de entidad referenciable por clave foránea.
type Ref string

const (
	RefCompany  Ref = "company"
	RefUser     Ref = "user"
	RefVehicle  Ref = "vehicle"
	RefDocument Ref = "document"
)

// Field devuelve el nombre del campo FK en los payloads ("company_id", ...).
func (r Ref) Field() string { return string(r) + "_id" }

// ReferenceChecker comprueba la existencia de filas referenciadas por FK,
// indexado por etiqueta de entidad.
type ReferenceChecker interface {
	Exists(ctx context.Context, target Ref, id string) (bool, error)
}
