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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const vehicleColumns = `id, id_number, vin, weight, registration_number, brand, model, production_year, kilometrage, gearbox_type, availability, tire_type, company_id, created_at, updated_at`

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	db DB
}

// NewVehicleRepository construye el adaptador de persistencia para vehículos.
func NewVehicleRepository(db DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(
		&v.ID, &v.IDNumber, &v.VIN, &v.Weight, &v.RegistrationNumber, &v.Brand,
		&v.Model, &v.ProductionYear, &v.Kilometrage, &v.GearboxType, &v.Availability,
		&v.TireType, &v.CompanyID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un nuevo vehículo.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.IDNumber, v.VIN, v.Weight, v.RegistrationNumber, v.Brand, v.Model,
		v.ProductionYear, v.Kilometrage, v.GearboxType, v.Availability, v.TireType,
		v.CompanyID, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID dentro del filtro de visibilidad.
func (r *VehicleRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	v, err := scanVehicle(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}
	return v, nil
}

// List devuelve vehículos dentro del filtro, con búsqueda por marca, modelo o
// matrícula y filtro de disponibilidad opcionales.
func (r *VehicleRepo) List(ctx context.Context, f scope.Filter, p repository.VehicleListParams, limit, offset int) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE TRUE`
	args := []any{}
	query, args = appendFilter(query, args, f)
	if p.CompanyID != "" {
		query += fmt.Sprintf(" AND company_id = $%d", len(args)+1)
		args = append(args, p.CompanyID)
	}
	if p.Search != "" {
		n := len(args) + 1
		query += fmt.Sprintf(" AND (brand ILIKE $%d OR model ILIKE $%d OR registration_number ILIKE $%d)", n, n+1, n+2)
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if p.Status != "" {
		query += fmt.Sprintf(" AND availability = $%d", len(args)+1)
		args = append(args, p.Status)
	}
	query += fmt.Sprintf(" ORDER BY brand, model LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update actualiza un vehículo dentro del filtro.
func (r *VehicleRepo) Update(ctx context.Context, f scope.Filter, v *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET
			id_number = $2, vin = $3, weight = $4, registration_number = $5, brand = $6,
			model = $7, production_year = $8, kilometrage = $9, gearbox_type = $10,
			availability = $11, tire_type = $12, company_id = $13, updated_at = $14
		WHERE id = $1`
	args := []any{
		v.ID, v.IDNumber, v.VIN, v.Weight, v.RegistrationNumber, v.Brand, v.Model,
		v.ProductionYear, v.Kilometrage, v.GearboxType, v.Availability, v.TireType,
		v.CompanyID, v.UpdatedAt,
	}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vehículo dentro del filtro.
func (r *VehicleRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM vehicles WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
