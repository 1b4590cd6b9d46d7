package entity

import "time"

// DocumentType clasificación del documento adjunto.
type DocumentType string

const (
	DocumentRegistration DocumentType = "registration"
	DocumentInsurance    DocumentType = "insurance"
	DocumentMaintenance  DocumentType = "maintenance"
	DocumentInspection   DocumentType = "inspection"
	DocumentManual       DocumentType = "manual"
	DocumentOther        DocumentType = "other"
)

// Document metadatos de un documento adjunto a un vehículo. El contenido
// binario vive en el object store; FilePath es la clave opaca del objeto.
type Document struct {
	ID          string
	Title       string
	Description string
	FilePath    string // "" = sin archivo subido todavía
	FileType    string
	FileSize    int64 // 0 = sin archivo
	VehicleID   string
	UserID      string // usuario que lo subió
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
