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

var _ repository.InsuranceRepository = (*InsuranceRepo)(nil)

const insuranceColumns = `id, insurer, policy_number, date_from, date_to, description, price, insurance_type, vehicle_id, COALESCE(document_id, ''), COALESCE(company_id, ''), created_at, updated_at`

// InsuranceRepo implementación del puerto InsuranceRepository sobre PostgreSQL.
type InsuranceRepo struct {
	db DB
}

// NewInsuranceRepository construye el adaptador de persistencia para pólizas.
func NewInsuranceRepository(db DB) *InsuranceRepo {
	return &InsuranceRepo{db: db}
}

func scanInsurance(row pgx.Row) (*entity.Insurance, error) {
	var i entity.Insurance
	err := row.Scan(
		&i.ID, &i.Insurer, &i.PolicyNumber, &i.DateFrom, &i.DateTo, &i.Description,
		&i.Price, &i.InsuranceType, &i.VehicleID, &i.DocumentID, &i.CompanyID,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste una nueva póliza.
func (r *InsuranceRepo) Create(ctx context.Context, i *entity.Insurance) error {
	query := `
		INSERT INTO insurances (id, insurer, policy_number, date_from, date_to, description, price, insurance_type, vehicle_id, document_id, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13)`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.Insurer, i.PolicyNumber, i.DateFrom, i.DateTo, i.Description,
		i.Price, i.InsuranceType, i.VehicleID, i.DocumentID, i.CompanyID,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert insurance: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza por ID dentro del filtro de visibilidad.
func (r *InsuranceRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurances WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	i, err := scanInsurance(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insurance by id: %w", err)
	}
	return i, nil
}

// List devuelve pólizas dentro del filtro, con filtros exactos opcionales.
func (r *InsuranceRepo) List(ctx context.Context, f scope.Filter, p repository.InsuranceListParams, limit, offset int) ([]*entity.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurances WHERE TRUE`
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
	query += fmt.Sprintf(" ORDER BY date_to LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	defer rows.Close()

	var out []*entity.Insurance
	for rows.Next() {
		i, err := scanInsurance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insurance: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// Finishing devuelve las pólizas dentro del filtro con date_to en (from, to],
// ordenadas por vencimiento ascendente.
func (r *InsuranceRepo) Finishing(ctx context.Context, f scope.Filter, from, to time.Time) ([]*entity.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurances WHERE date_to > $1 AND date_to <= $2`
	args := []any{from, to}
	query, args = appendFilter(query, args, f)
	query += ` ORDER BY date_to`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list finishing insurances: %w", err)
	}
	defer rows.Close()

	var out []*entity.Insurance
	for rows.Next() {
		i, err := scanInsurance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insurance: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// Update actualiza una póliza dentro del filtro.
func (r *InsuranceRepo) Update(ctx context.Context, f scope.Filter, i *entity.Insurance) error {
	query := `
		UPDATE insurances SET
			insurer = $2, policy_number = $3, date_from = $4, date_to = $5,
			description = $6, price = $7, insurance_type = $8, vehicle_id = $9,
			document_id = NULLIF($10, ''), company_id = NULLIF($11, ''), updated_at = $12
		WHERE id = $1`
	args := []any{
		i.ID, i.Insurer, i.PolicyNumber, i.DateFrom, i.DateTo, i.Description,
		i.Price, i.InsuranceType, i.VehicleID, i.DocumentID, i.CompanyID, i.UpdatedAt,
	}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update insurance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una póliza dentro del filtro.
func (r *InsuranceRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM insurances WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete insurance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
