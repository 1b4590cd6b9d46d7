package entity

import "time"

// Company empresa dueña de vehículos y usuarios. IsInternal distingue una
// unidad organizativa propia del operador de flota de una contraparte externa
// (taller, aseguradora, proveedor de combustible).
type Company struct {
	ID          string
	Name        string
	Description string // default ""
	Phone       string
	PostCode    string
	Address1    string
	Address2    string
	City        string
	Country     string
	NIP         string // identificación tributaria
	IsInternal  bool   // default true
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
