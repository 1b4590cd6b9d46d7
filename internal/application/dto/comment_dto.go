package dto

import "time"

// CreateCommentRequest entrada para crear o reemplazar un comentario.
type CreateCommentRequest struct {
	Content   string     `json:"content"`
	Date      *time.Time `json:"date"`
	VehicleID string     `json:"vehicle_id"`
	UserID    string     `json:"user_id"`
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	VehicleID string    `json:"vehicle_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentListResponse lista paginada de comentarios.
type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
