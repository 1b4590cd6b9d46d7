package repository

import "context"

// RepoSet agrupa todos los repositorios atados a una misma transacción.
type RepoSet struct {
	Companies    CompanyRepository
	Users        UserRepository
	Vehicles     VehicleRepository
	Documents    DocumentRepository
	Refuels      RefuelRepository
	Events       EventRepository
	Insurances   InsuranceRepository
	Reservations ReservationRepository
	Comments     CommentRepository
	Refs         ReferenceChecker
}

// UnitOfWork ejecuta fn dentro de una transacción: toda validación corre
// antes del primer INSERT/UPDATE y un error en cualquier punto deshace el
// conjunto completo, así nunca queda una escritura parcial.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(tx RepoSet) error) error
}
