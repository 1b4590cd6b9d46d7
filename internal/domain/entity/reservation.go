package entity

import "time"

// Reservation reserva de un vehículo por un usuario en una ventana de fechas.
type Reservation struct {
	ID              string
	DateFrom        time.Time
	DateTo          time.Time
	ReservationDate time.Time // cuándo se hizo la reserva
	VehicleID       string
	UserID          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
