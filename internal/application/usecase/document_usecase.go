package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/validate"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// FileStore guarda y recupera el contenido binario de los documentos bajo
// una clave opaca.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, int64, string, error)
	Remove(ctx context.Context, key string) error
}

// DocumentUsecase gestiona metadatos de documentos y sus archivos adjuntos.
type DocumentUsecase struct {
	documents repository.DocumentRepository
	uow       repository.UnitOfWork
	files     FileStore
	maxSize   int64
}

func NewDocumentUsecase(documents repository.DocumentRepository, uow repository.UnitOfWork, files FileStore, maxSize int64) *DocumentUsecase {
	return &DocumentUsecase{documents: documents, uow: uow, files: files, maxSize: maxSize}
}

// Create da de alta los metadatos de un documento. El vehículo referenciado
// debe existir; el archivo se sube después con UploadFile.
func (uc *DocumentUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	now := time.Now()
	d := &entity.Document{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		FileType:    req.FileType,
		VehicleID:   req.VehicleID,
		UserID:      req.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.UserID == "" {
		d.UserID = actor.ID
	}

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
			return err
		}
		return tx.Documents.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	resp := toDocumentResponse(d)
	return &resp, nil
}

// Get devuelve el documento. Los documentos no se filtran por empresa.
func (uc *DocumentUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.DocumentResponse, error) {
	d, err := uc.documents.GetByID(ctx, scope.Documents(actor), id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := toDocumentResponse(d)
	return &resp, nil
}

// List devuelve documentos paginados con búsqueda opcional.
func (uc *DocumentUsecase) List(ctx context.Context, actor *entity.User, p repository.DocumentListParams, page dto.PageRequest) (*dto.DocumentListResponse, error) {
	page.DefaultPage()
	items, err := uc.documents.List(ctx, scope.Documents(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza los metadatos del documento, conservando el archivo ya
// subido.
func (uc *DocumentUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
			return err
		}
		current, err := tx.Documents.GetByID(ctx, scope.Documents(actor), id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		current.Title = req.Title
		current.Description = req.Description
		current.FileType = req.FileType
		current.VehicleID = req.VehicleID
		if req.UserID != "" {
			current.UserID = req.UserID
		}
		current.UpdatedAt = time.Now()
		return tx.Documents.Update(ctx, scope.Documents(actor), current)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina el documento y, si tenía archivo, el objeto almacenado.
func (uc *DocumentUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	var key string
	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		d, err := tx.Documents.GetByID(ctx, scope.Documents(actor), id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		key = d.FilePath
		return tx.Documents.Delete(ctx, scope.Documents(actor), id)
	})
	if err != nil {
		return err
	}
	if key != "" {
		// el objeto huérfano no invalida el borrado ya confirmado
		_ = uc.files.Remove(ctx, key)
	}
	return nil
}

// UploadFile guarda el contenido binario del documento y actualiza sus
// metadatos de archivo. Rechaza archivos que exceden el tamaño máximo.
func (uc *DocumentUsecase) UploadFile(ctx context.Context, actor *entity.User, id, filename, contentType string, size int64, r io.Reader) (*dto.DocumentResponse, error) {
	if size <= 0 {
		return nil, domain.NewValidationError("file", "el archivo está vacío", nil)
	}
	if size > uc.maxSize {
		return nil, domain.NewValidationError("file", "el archivo excede el tamaño máximo permitido", nil)
	}

	d, err := uc.documents.GetByID(ctx, scope.Documents(actor), id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	key := "documents/" + d.ID + "/" + filename
	if err := uc.files.Save(ctx, key, r, size, contentType); err != nil {
		return nil, err
	}

	old := d.FilePath
	d.FilePath = key
	d.FileSize = size
	d.UpdatedAt = time.Now()

	err = uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Documents.Update(ctx, scope.Documents(actor), d)
	})
	if err != nil {
		return nil, err
	}
	if old != "" && old != key {
		_ = uc.files.Remove(ctx, old)
	}
	resp := toDocumentResponse(d)
	return &resp, nil
}

// DownloadFile abre el contenido binario del documento. Devuelve el lector,
// el tamaño, el content type y el nombre sugerido.
func (uc *DocumentUsecase) DownloadFile(ctx context.Context, actor *entity.User, id string) (io.ReadCloser, int64, string, string, error) {
	d, err := uc.documents.GetByID(ctx, scope.Documents(actor), id)
	if err != nil {
		return nil, 0, "", "", err
	}
	if d == nil || d.FilePath == "" {
		return nil, 0, "", "", domain.ErrNotFound
	}
	rc, size, contentType, err := uc.files.Open(ctx, d.FilePath)
	if err != nil {
		return nil, 0, "", "", err
	}
	return rc, size, contentType, d.Title, nil
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		FilePath:    d.FilePath,
		FileType:    d.FileType,
		FileSize:    d.FileSize,
		VehicleID:   d.VehicleID,
		UserID:      d.UserID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
