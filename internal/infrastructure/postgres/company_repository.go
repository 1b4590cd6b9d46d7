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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, description, phone, post_code, address1, address2, city, country, nip, is_internal, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.Phone, c.PostCode, c.Address1, c.Address2,
		c.City, c.Country, c.NIP, c.IsInternal, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID dentro del filtro de visibilidad.
func (r *CompanyRepo) GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	var c entity.Company
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Description, &c.Phone, &c.PostCode, &c.Address1, &c.Address2,
		&c.City, &c.Country, &c.NIP, &c.IsInternal, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}

// List devuelve empresas dentro del filtro, paginadas.
func (r *CompanyRepo) List(ctx context.Context, f scope.Filter, p repository.CompanyListParams, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE TRUE`
	args := []any{}
	query, args = appendFilter(query, args, f)
	if p.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR nip ILIKE $%d)", len(args)+1, len(args)+2)
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern)
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Phone, &c.PostCode, &c.Address1, &c.Address2,
			&c.City, &c.Country, &c.NIP, &c.IsInternal, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza una empresa dentro del filtro. Cero filas afectadas
// significa fuera de alcance o inexistente: ErrNotFound.
func (r *CompanyRepo) Update(ctx context.Context, f scope.Filter, c *entity.Company) error {
	query := `
		UPDATE companies SET
			name = $2, description = $3, phone = $4, post_code = $5, address1 = $6,
			address2 = $7, city = $8, country = $9, nip = $10, is_internal = $11,
			updated_at = $12
		WHERE id = $1`
	args := []any{
		c.ID, c.Name, c.Description, c.Phone, c.PostCode, c.Address1,
		c.Address2, c.City, c.Country, c.NIP, c.IsInternal, c.UpdatedAt,
	}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa dentro del filtro.
func (r *CompanyRepo) Delete(ctx context.Context, f scope.Filter, id string) error {
	query := `DELETE FROM companies WHERE id = $1`
	args := []any{id}
	query, args = appendFilter(query, args, f)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
