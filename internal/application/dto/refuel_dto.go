package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRefuelRequest entrada para crear o reemplazar un repostaje.
// Date vacía se rellena con el momento actual.
type CreateRefuelRequest struct {
	Date                *time.Time      `json:"date"`
	FuelAmount          float64         `json:"fuel_amount"`
	Price               decimal.Decimal `json:"price"`
	KilometrageAtRefuel int             `json:"kilometrage_at_refuel"`
	GasStation          string          `json:"gas_station"`
	VehicleID           string          `json:"vehicle_id"`
	DocumentID          string          `json:"document_id"`
	UserID              string          `json:"user_id"`
}

// RefuelResponse salida de un repostaje.
type RefuelResponse struct {
	ID                  string          `json:"id"`
	Date                time.Time       `json:"date"`
	FuelAmount          float64         `json:"fuel_amount"`
	Price               decimal.Decimal `json:"price"`
	KilometrageAtRefuel int             `json:"kilometrage_at_refuel"`
	GasStation          string          `json:"gas_station"`
	VehicleID           string          `json:"vehicle_id"`
	DocumentID          string          `json:"document_id"`
	UserID              string          `json:"user_id"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// RefuelListResponse lista paginada de repostajes.
type RefuelListResponse struct {
	Items []RefuelResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// RefuelStat total de combustible de un mes, etiquetado MM/YY.
type RefuelStat struct {
	MonthYear string  `json:"month_year"`
	TotalFuel float64 `json:"total_fuel"`
}
