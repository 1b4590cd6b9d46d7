package entity

import "time"

// Comment comentario libre de un usuario sobre un vehículo.
type Comment struct {
	ID        string
	Content   string
	Date      time.Time
	VehicleID string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
