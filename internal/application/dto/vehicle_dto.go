package dto

import "time"

// CreateVehicleRequest entrada para crear o reemplazar un vehículo.
type CreateVehicleRequest struct {
	IDNumber           string  `json:"id_number"`
	VIN                string  `json:"vin"`
	Weight             float64 `json:"weight"`
	RegistrationNumber string  `json:"registration_number"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	ProductionYear     int     `json:"production_year"`
	Kilometrage        int     `json:"kilometrage"`
	GearboxType        string  `json:"gearbox_type"`
	Availability       string  `json:"availability"`
	TireType           string  `json:"tire_type"`
	CompanyID          string  `json:"company_id"`
}

// VehicleResponse salida de un vehículo.
type VehicleResponse struct {
	ID                 string    `json:"id"`
	IDNumber           string    `json:"id_number"`
	VIN                string    `json:"vin"`
	Weight             float64   `json:"weight"`
	RegistrationNumber string    `json:"registration_number"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	ProductionYear     int       `json:"production_year"`
	Kilometrage        int       `json:"kilometrage"`
	GearboxType        string    `json:"gearbox_type"`
	Availability       string    `json:"availability"`
	TireType           string    `json:"tire_type"`
	CompanyID          string    `json:"company_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VehicleListResponse lista paginada de vehículos.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
