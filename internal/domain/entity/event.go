package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event suceso de mantenimiento/servicio sobre un vehículo. CompanyID
// referencia la empresa contraparte (taller, proveedor); Price puede ser nulo
// cuando el evento no tuvo coste.
type Event struct {
	ID          string
	EventType   string
	Date        time.Time
	Description string
	Price       decimal.NullDecimal
	VehicleID   string
	DocumentID  string
	CompanyID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
