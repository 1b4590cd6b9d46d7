package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

var _ repository.UnitOfWork = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.RepoSet) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	set := NewRepoSet(tx)
	if err := fn(set); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepoSet ata todos los repositorios a la misma conexión o transacción.
func NewRepoSet(db DB) repository.RepoSet {
	return repository.RepoSet{
		Companies:    NewCompanyRepository(db),
		Users:        NewUserRepository(db),
		Vehicles:     NewVehicleRepository(db),
		Documents:    NewDocumentRepository(db),
		Refuels:      NewRefuelRepository(db),
		Events:       NewEventRepository(db),
		Insurances:   NewInsuranceRepository(db),
		Reservations: NewReservationRepository(db),
		Comments:     NewCommentRepository(db),
		Refs:         NewReferenceChecker(db),
	}
}
