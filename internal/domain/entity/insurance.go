package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceType tipo de póliza.
type InsuranceType string

const (
	InsuranceOC   InsuranceType = "OC"
	InsuranceAC   InsuranceType = "AC"
	InsuranceOCAC InsuranceType = "OC/AC"
)

// Insurance póliza de seguro de un vehículo con su ventana de cobertura.
// CompanyID referencia la empresa aseguradora.
type Insurance struct {
	ID            string
	Insurer       string
	PolicyNumber  string
	DateFrom      time.Time
	DateTo        time.Time
	Description   string
	Price         decimal.Decimal
	InsuranceType InsuranceType
	VehicleID     string
	DocumentID    string
	CompanyID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
