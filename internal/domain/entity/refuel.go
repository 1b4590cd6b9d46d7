package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refuel repostaje registrado por un usuario para un vehículo, con su
// comprobante (documento) asociado.
type Refuel struct {
	ID                  string
	Date                time.Time
	FuelAmount          float64 // litros
	Price               decimal.Decimal
	KilometrageAtRefuel int
	GasStation          string
	VehicleID           string
	DocumentID          string
	UserID              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
