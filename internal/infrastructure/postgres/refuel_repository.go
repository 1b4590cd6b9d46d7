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

var _ repository.RefuelRepository = (*RefuelRepo)(nil)

const refuelColumns = `id, date, fuel_amount, price, kilometrage_at_refuel, gas_station, vehicle_id, COALESCE(document_id, ''), user_id, created_at, updated_at`

// RefuelRepo implementación del puerto RefuelRepository sobre PostgreSQL.
type RefuelRepo struct {
	db DB
}

// NewRefuelRepository construye el adaptador de persistencia para repostajes.
func NewRefuelRepository(db DB) *RefuelRepo {
	return &RefuelRepo{db: db}
}

func scanRefuel(row pgx.Row) (*entity.Refuel, error) {
	var rf entity.Refuel
	err := row.Scan(
		&rf.ID, &rf.Date, &rf.FuelAmount, &rf.Price, &rf.KilometrageAtRefuel,
		&rf.GasStation, &rf.VehicleID, &rf.DocumentID, &rf.UserID,
		&rf.CreatedAt, &rf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

// Create persiste un nuevo repostaje.
func (r *RefuelRepo) Create(ctx context.Context, rf *entity.Refuel) error {
	query := `
		INSERT INTO refuels (id, date, fuel_amount, price, kilometrage_at_refuel, gas_station, vehicle_id, document_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		rf.ID, rf.Date, rf.FuelAmount, rf.Price, rf.KilometrageAtRefuel,
		rf.GasStation, rf.VehicleID, rf.DocumentID, rf.UserID,
		rf.CreatedAt, rf.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refuel: %w", err)
	}
	return nil
}

// GetByID obtiene un repostaje por ID dentro del filtro de visibilidad.
func (r *RefuelRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Refuel, error) {
	query := `SELECT ` + refuelColumns + ` FROM refuels WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	rf, err := scanRefuel(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refuel by id: %w", err)
	}
	return rf, nil
}

// List devuelve repostajes dentro del filtro, con filtros exactos opcionales.
func (r *RefuelRepo) List(ctx context.Context, f scope.Filter, p repository.RefuelListParams, limit, offset int) ([]*entity.Refuel, error) {
	query := `SELECT ` + refuelColumns + ` FROM refuels WHERE TRUE`
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
	if p.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", len(args)+1)
		args = append(args, p.UserID)
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list refuels: %w", err)
	}
	defer rows.Close()

	var out []*entity.Refuel
	for rows.Next() {
		rf, err := scanRefuel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan refuel: %w", err)
		}
		out = append(out, rf)
	}
	return out, rows.Err()
}

// Update actualiza un repostaje dentro del filtro.
func (r *RefuelRepo) Update(ctx context.Context, f scope.Filter, rf *entity.Refuel) error {
	query := `
		UPDATE refuels SET
			date = $2, fuel_amount = $3, price = $4, kilometrage_at_refuel = $5,
			gas_station = $6, vehicle_id = $7, document_id = NULLIF($8, ''), user_id = $9,
			updated_at = $10
		WHERE id = $1`
	args := []any{
		rf.ID, rf.Date, rf.FuelAmount, rf.Price, rf.KilometrageAtRefuel,
		rf.GasStation, rf.VehicleID, rf.DocumentID, rf.UserID, rf.UpdatedAt,
	}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update refuel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un repostaje dentro del filtro.
func (r *RefuelRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM refuels WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete refuel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MonthlyFuelTotals agrega fuel_amount por mes (etiqueta MM/YY) desde la
// fecha dada, dentro del filtro de visibilidad.
func (r *RefuelRepo) MonthlyFuelTotals(ctx context.Context, f scope.Filter, since time.Time) (map[string]float64, error) {
	query := `
		SELECT to_char(date, 'MM/YY') AS month_year, SUM(fuel_amount)
		FROM refuels WHERE date >= $1`
	args := []any{since}
	query, args = appendFilter(query, args, f)
	query += ` GROUP BY to_char(date, 'MM/YY')`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly fuel totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var label string
		var total float64
		if err := rows.Scan(&label, &total); err != nil {
			return nil, fmt.Errorf("scan fuel total: %w", err)
		}
		totals[label] = total
	}
	return totals, rows.Err()
}

// ListByVehicle devuelve todos los repostajes del vehículo con el nombre del
// autor, de más reciente a más antiguo. Alimenta el reporte PDF.
func (r *RefuelRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]repository.RefuelWithAuthor, error) {
	query := `
		SELECT r.id, r.date, r.fuel_amount, r.price, r.kilometrage_at_refuel,
			r.gas_station, r.vehicle_id, COALESCE(r.document_id, ''), r.user_id,
			r.created_at, r.updated_at, u.name
		FROM refuels r
		JOIN users u ON u.id = r.user_id
		WHERE r.vehicle_id = $1
		ORDER BY r.date DESC`
	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list refuels by vehicle: %w", err)
	}
	defer rows.Close()

	var out []repository.RefuelWithAuthor
	for rows.Next() {
		var rwa repository.RefuelWithAuthor
		rf := &rwa.Refuel
		if err := rows.Scan(
			&rf.ID, &rf.Date, &rf.FuelAmount, &rf.Price, &rf.KilometrageAtRefuel,
			&rf.GasStation, &rf.VehicleID, &rf.DocumentID, &rf.UserID,
			&rf.CreatedAt, &rf.UpdatedAt, &rwa.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("scan refuel with author: %w", err)
		}
		out = append(out, rwa)
	}
	return out, rows.Err()
}
