package dto

import "time"

// CreateReservationRequest entrada para crear o reemplazar una reserva.
// ReservationDate vacía se rellena con el momento actual.
type CreateReservationRequest struct {
	DateFrom        time.Time  `json:"date_from"`
	DateTo          time.Time  `json:"date_to"`
	ReservationDate *time.Time `json:"reservation_date"`
	VehicleID       string     `json:"vehicle_id"`
	UserID          string     `json:"user_id"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID              string    `json:"id"`
	DateFrom        time.Time `json:"date_from"`
	DateTo          time.Time `json:"date_to"`
	ReservationDate time.Time `json:"reservation_date"`
	VehicleID       string    `json:"vehicle_id"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReservationListResponse lista paginada de reservas.
type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
