package dto

import "time"

// CreateUserRequest entrada para crear o reemplazar un usuario. Password1 y
// Password2 deben coincidir y cumplir la complejidad mínima.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
