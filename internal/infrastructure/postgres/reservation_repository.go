package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

const reservationColumns = `id, date_from, date_to, reservation_date, vehicle_id, user_id, created_at, updated_at`

// ReservationRepo implementación del puerto ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	db DB
}

// NewReservationRepository construye el adaptador de persistencia para reservas.
func NewReservationRepository(db DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var rv entity.Reservation
	err := row.Scan(
		&rv.ID, &rv.DateFrom, &rv.DateTo, &rv.ReservationDate, &rv.VehicleID,
		&rv.UserID, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create persiste una nueva reserva.
func (r *ReservationRepo) Create(ctx context.Context, rv *entity.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		rv.ID, rv.DateFrom, rv.DateTo, rv.ReservationDate, rv.VehicleID, rv.UserID,
		rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID dentro del filtro de visibilidad.
func (r *ReservationRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	rv, err := scanReservation(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation by id: %w", err)
	}
	return rv, nil
}

// List devuelve reservas dentro del filtro, con filtros exactos opcionales.
func (r *ReservationRepo) List(ctx context.Context, f scope.Filter, p repository.ReservationListParams, limit, offset int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE TRUE`
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
	query += fmt.Sprintf(" ORDER BY date_from DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Upcoming devuelve las reservas dentro del filtro con date_from posterior a
// after, ordenadas por inicio ascendente.
func (r *ReservationRepo) Upcoming(ctx context.Context, f scope.Filter, after time.Time) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE date_from > $1`
	args := []any{after}
	query, args = appendFilter(query, args, f)
	query += ` ORDER BY date_from`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list upcoming reservations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Update actualiza una reserva dentro del filtro.
func (r *ReservationRepo) Update(ctx context.Context, f scope.Filter, rv *entity.Reservation) error {
	query := `
		UPDATE reservations SET
			date_from = $2, date_to = $3, reservation_date = $4, vehicle_id = $5,
			user_id = $6, updated_at = $7
		WHERE id = $1`
	args := []any{rv.ID, rv.DateFrom, rv.DateTo, rv.ReservationDate, rv.VehicleID, rv.UserID, rv.UpdatedAt}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una reserva dentro del filtro.
func (r *ReservationRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
