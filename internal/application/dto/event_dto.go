package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEventRequest entrada para crear o reemplazar un evento.
// Price nulo significa evento sin coste.
type CreateEventRequest struct {
	EventType   string              `json:"event_type"`
	Date        *time.Time          `json:"date"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	VehicleID   string              `json:"vehicle_id"`
	DocumentID  string              `json:"document_id"`
	CompanyID   string              `json:"company_id"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID          string              `json:"id"`
	EventType   string              `json:"event_type"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	VehicleID   string              `json:"vehicle_id"`
	DocumentID  string              `json:"document_id"`
	CompanyID   string              `json:"company_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// EventListResponse lista paginada de eventos.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
