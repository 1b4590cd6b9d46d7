package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInsuranceRequest entrada para crear o reemplazar una póliza.
type CreateInsuranceRequest struct {
	Insurer       string          `json:"insurer"`
	PolicyNumber  string          `json:"policy_number"`
	DateFrom      time.Time       `json:"date_from"`
	DateTo        time.Time       `json:"date_to"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	InsuranceType string          `json:"insurance_type"`
	VehicleID     string          `json:"vehicle_id"`
	DocumentID    string          `json:"document_id"`
	CompanyID     string          `json:"company_id"`
}

// InsuranceResponse salida de una póliza.
type InsuranceResponse struct {
	ID            string          `json:"id"`
	Insurer       string          `json:"insurer"`
	PolicyNumber  string          `json:"policy_number"`
	DateFrom      time.Time       `json:"date_from"`
	DateTo        time.Time       `json:"date_to"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	InsuranceType string          `json:"insurance_type"`
	VehicleID     string          `json:"vehicle_id"`
	DocumentID    string          `json:"document_id"`
	CompanyID     string          `json:"company_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InsuranceListResponse lista paginada de pólizas.
type InsuranceListResponse struct {
	Items []InsuranceResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
