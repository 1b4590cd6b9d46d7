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

var _ repository.EventRepository = (*EventRepo)(nil)

const eventColumns = `id, event_type, date, description, price, vehicle_id, COALESCE(document_id, ''), COALESCE(company_id, ''), created_at, updated_at`

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	db DB
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(db DB) *EventRepo {
	return &EventRepo{db: db}
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID, &e.EventType, &e.Date, &e.Description, &e.Price, &e.VehicleID,
		&e.DocumentID, &e.CompanyID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo evento.
func (r *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	query := `
		INSERT INTO events (id, event_type, date, description, price, vehicle_id, document_id, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.EventType, e.Date, e.Description, e.Price, e.VehicleID,
		e.DocumentID, e.CompanyID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID dentro del filtro de visibilidad.
func (r *EventRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	e, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

// List devuelve eventos dentro del filtro, con filtros exactos opcionales.
func (r *EventRepo) List(ctx context.Context, f scope.Filter, p repository.EventListParams, limit, offset int) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE TRUE`
	args := []any{}
	query, args = appendFilter(query, args, f)
	if p.VehicleID != "" {
		query += fmt.Sprintf(" AND vehicle_id = $%d", len(args)+1)
		args = append(args, p.VehicleID)
	}
	if p.DocumentID != "" {
		query += fmt.Sprintf(" AND document_id = $%d", len(args)+1)
		args = append(args, p.DocumentID)
	}
	if p.CompanyID != "" {
		query += fmt.Sprintf(" AND company_id = $%d", len(args)+1)
		args = append(args, p.CompanyID)
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update actualiza un evento dentro del filtro.
func (r *EventRepo) Update(ctx context.Context, f scope.Filter, e *entity.Event) error {
	query := `
		UPDATE events SET
			event_type = $2, date = $3, description = $4, price = $5, vehicle_id = $6,
			document_id = NULLIF($7, ''), company_id = NULLIF($8, ''), updated_at = $9
		WHERE id = $1`
	args := []any{
		e.ID, e.EventType, e.Date, e.Description, e.Price, e.VehicleID,
		e.DocumentID, e.CompanyID, e.UpdatedAt,
	}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un evento dentro del filtro.
func (r *EventRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
