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

var _ repository.CommentRepository = (*CommentRepo)(nil)

const commentColumns = `id, content, date, vehicle_id, user_id, created_at, updated_at`

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	db DB
}

// NewCommentRepository construye el adaptador de persistencia para comentarios.
func NewCommentRepository(db DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var c entity.Comment
	err := row.Scan(
		&c.ID, &c.Content, &c.Date, &c.VehicleID, &c.UserID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo comentario.
func (r *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Content, c.Date, c.VehicleID, c.UserID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene un comentario por ID dentro del filtro de visibilidad.
func (r *CommentRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	c, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment by id: %w", err)
	}
	return c, nil
}

// List devuelve comentarios dentro del filtro, con filtros exactos opcionales.
func (r *CommentRepo) List(ctx context.Context, f scope.Filter, p repository.CommentListParams, limit, offset int) ([]*entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE TRUE`
	args := []any{}
	query, args = appendFilter(query, args, f)
	if p.VehicleID != "" {
		query += fmt.Sprintf(" AND vehicle_id = $%d", len(args)+1)
		args = append(args, p.VehicleID)
	}
	if p.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", len(args)+1)
		args = append(args, p.UserID)
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza un comentario dentro del filtro.
func (r *CommentRepo) Update(ctx context.Context, f scope.Filter, c *entity.Comment) error {
	query := `
		UPDATE comments SET
			content = $2, date = $3, vehicle_id = $4, user_id = $5, updated_at = $6
		WHERE id = $1`
	args := []any{c.ID, c.Content, c.Date, c.VehicleID, c.UserID, c.UpdatedAt}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un comentario dentro del filtro.
func (r *CommentRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM comments WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
