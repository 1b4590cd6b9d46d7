package entity

import (
	"strings"
	"time"
)

// GearboxType tipo de caja de cambios.
type GearboxType string

const (
	GearboxAuto     GearboxType = "automatic"
	GearboxManual   GearboxType = "manual"
	GearboxSemiAuto GearboxType = "semi-automatic"
)

// VehicleAvailability estado de disponibilidad del vehículo.
type VehicleAvailability string

const (
	AvailabilityInUse          VehicleAvailability = "in use"
	AvailabilityService        VehicleAvailability = "service"
	AvailabilityAvailable      VehicleAvailability = "available"
	AvailabilityDecommissioned VehicleAvailability = "decommissioned"
	AvailabilityBooked         VehicleAvailability = "booked"
)

// TireType tipo de neumáticos montados.
type TireType string

const (
	TireSummer    TireType = "summer"
	TireWinter    TireType = "winter"
	TireAllSeason TireType = "all-season"
)

// Vehicle vehículo de la flota, siempre asociado a una empresa.
type Vehicle struct {
	ID                 string
	IDNumber           string // número del permiso de circulación
	VIN                string
	Weight             float64
	RegistrationNumber string
	Brand              string
	Model              string
	ProductionYear     int
	Kilometrage        int
	GearboxType        GearboxType
	Availability       VehicleAvailability
	TireType           TireType
	CompanyID          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DisplayName devuelve "Brand Model" con iniciales en mayúscula, para
// cabeceras de reportes.
func (v *Vehicle) DisplayName() string {
	return capitalize(v.Brand) + " " + capitalize(v.Model)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
