package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// file_path y file_size son NULL hasta que se sube el archivo.
const documentColumns = `id, title, description, COALESCE(file_path, ''), file_type, COALESCE(file_size, 0), COALESCE(vehicle_id, ''), COALESCE(user_id, ''), created_at, updated_at`

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	db DB
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(db DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.FilePath, &d.FileType, &d.FileSize,
		&d.VehicleID, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste los metadatos de un nuevo documento.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (id, title, description, file_path, file_type, file_size, vehicle_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, 0), NULLIF($7, ''), NULLIF($8, ''), $9, $10)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Title, d.Description, d.FilePath, d.FileType, d.FileSize,
		d.VehicleID, d.UserID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID dentro del filtro de visibilidad.
func (r *DocumentRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	d, err := scanDocument(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document by id: %w", err)
	}
	return d, nil
}

// List devuelve documentos dentro del filtro, con búsqueda por título o
// descripción y filtro de tipo opcionales.
func (r *DocumentRepo) List(ctx context.Context, f scope.Filter, p repository.DocumentListParams, limit, offset int) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE TRUE`
	args := []any{}
	query, args = appendFilter(query, args, f)
	if p.Search != "" {
		n := len(args) + 1
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", n, n+1)
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern)
	}
	if p.FileType != "" {
		query += fmt.Sprintf(" AND file_type = $%d", len(args)+1)
		args = append(args, p.FileType)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update actualiza un documento dentro del filtro.
func (r *DocumentRepo) Update(ctx context.Context, f scope.Filter, d *entity.Document) error {
	query := `
		UPDATE documents SET
			title = $2, description = $3, file_path = NULLIF($4, ''), file_type = $5,
			file_size = NULLIF($6, 0), vehicle_id = NULLIF($7, ''), user_id = NULLIF($8, ''),
			updated_at = $9
		WHERE id = $1`
	args := []any{
		d.ID, d.Title, d.Description, d.FilePath, d.FileType, d.FileSize,
		d.VehicleID, d.UserID, d.UpdatedAt,
	}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un documento dentro del filtro.
func (r *DocumentRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM documents WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
