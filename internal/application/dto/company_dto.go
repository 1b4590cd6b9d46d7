package dto

import "time"

// CreateCompanyRequest entrada para crear o reemplazar una empresa.
// IsInternal por defecto true; Description por defecto "".
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	PostCode    string `json:"post_code"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	Country     string `json:"country"`
	NIP         string `json:"nip"`
	IsInternal  *bool  `json:"is_internal"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	PostCode    string    `json:"post_code"`
	Address1    string    `json:"address1"`
	Address2    string    `json:"address2"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	NIP         string    `json:"nip"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
