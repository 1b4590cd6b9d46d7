package dto

import "time"

// CreateDocumentRequest entrada para crear o reemplazar los metadatos de un
// documento. El archivo se sube por separado.
type CreateDocumentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FileType    string `json:"file_type"`
	VehicleID   string `json:"vehicle_id"`
	UserID      string `json:"user_id"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path,omitempty"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size,omitempty"`
	VehicleID   string    `json:"vehicle_id"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentListResponse lista paginada de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
