// Package repository define los puertos de persistencia del dominio.
//
// Toda lectura, actualización o borrado recibe el scope.Filter del usuario
// actuante: la misma consulta que limita los listados limita también los
// accesos por id, de modo que una fila fuera de alcance se comporta como
// inexistente.
package repository

import (
	"context"
	"time"

	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// CompanyListParams filtros opcionales del listado de empresas.
type CompanyListParams struct {
	Search string // nombre o NIP, ILIKE
}

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	// GetByID devuelve nil, nil si la fila no existe dentro del filtro.
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Company, error)
	List(ctx context.Context, f scope.Filter, p CompanyListParams, limit, offset int) ([]*entity.Company, error)
	// Update y Delete devuelven domain.ErrNotFound si la fila queda fuera del filtro.
	Update(ctx context.Context, f scope.Filter, c *entity.Company) error
	Delete(ctx context.Context, f scope.Filter, id string) error
}

// UserListParams filtros opcionales del listado de usuarios.
type UserListParams struct {
	CompanyID string
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.User, error)
	// GetByEmail no aplica filtro de visibilidad: lo usan el login y el
	// chequeo de email duplicado.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, f scope.Filter, p UserListParams, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, f scope.Filter, u *entity.User) error
	Delete(ctx context.Context, f scope.Filter, id string) error
}

// VehicleListParams filtros opcionales del listado de vehículos.
type VehicleListParams struct {
	CompanyID string
	Search    string // marca, modelo o matrícula, ILIKE
	Status    string // availability exacta
}

// VehicleRepository puerto de persistencia para vehículos.
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Vehicle, error)
	List(ctx context.Context, f scope.Filter, p VehicleListParams, limit, offset int) ([]*entity.Vehicle, error)
	Update(ctx context.Context, f scope.Filter, v *entity.Vehicle) error
	Delete(ctx context.Context, f scope.Filter, id string) error
}

// DocumentListParams filtros opcionales del listado de documentos.
type DocumentListParams struct {
	Search   string // título o descripción, ILIKE
	FileType string
}

// DocumentRepository puerto de persistencia para documentos.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Document, error)
	List(ctx context.Context, f scope.Filter, p DocumentListParams, limit, offset int) ([]*entity.Document, error)
	Update(ctx context.Context, f scope.Filter, d *entity.Document) error
	Delete(ctx context.Context, f scope.Filter, id string) error
}

// RefuelListParams filtros opcionales del listado de repostajes.
type RefuelListParams struct {
	VehicleID  string
	DocumentID string
	UserID     string
}

// RefuelWithAuthor repostaje más el nombre de su autor, para el reporte PDF.
type RefuelWithAuthor struct {
	Refuel     entity.Refuel
	AuthorName string
}

// RefuelRepository puerto de persistencia para repostajes.
type RefuelRepository interface {
	Create(ctx context.Context, r *entity.Refuel) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Refuel, error)
	List(ctx context.Context, f scope.Filter, p RefuelListParams, limit, offset int) ([]*entity.Refuel, error)
	Update(ctx context.Context, f scope.Filter, r *entity.Refuel) error
	Delete(ctx context.Context, f scope.Filter, id string) error
	// MonthlyFuelTotals suma fuel_amount por etiqueta MM/YY desde la fecha
	// dada, restringido al filtro de visibilidad.
	MonthlyFuelTotals(ctx context.Context, f scope.Filter, since time.Time) (map[string]float64, error)
	// ListByVehicle devuelve los repostajes del vehículo con el nombre del
	// autor, ordenados por fecha descendente.
	ListByVehicle(ctx context.Context, vehicleID string) ([]RefuelWithAuthor, error)
}

// EventListParams filtros opcionales del listado de eventos.
type EventListParams struct {
	VehicleID  string
	DocumentID string
	CompanyID  string
}

// EventRepository puerto de persistencia para eventos.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Event, error)
	List(ctx context.Context, f scope.Filter, p EventListParams, limit, offset int) ([]*entity.Event, error)
	Update(ctx context.Context, f scope.Filter, e *entity.Event) error
	Delete(ctx context.Context, f scope.Filter, id string) error
}

// InsuranceListParams filtros opcionales del listado de pólizas.
type InsuranceListParams struct {
	VehicleID  string
	DocumentID string
	CompanyID  string
}

// InsuranceRepository puerto de persistencia para pólizas.
type InsuranceRepository interface {
	Create(ctx context.Context, i *entity.Insurance) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Insurance, error)
	List(ctx context.Context, f scope.Filter, p InsuranceListParams, limit, offset int) ([]*entity.Insurance, error)
	Update(ctx context.Context, f scope.Filter, i *entity.Insurance) error
	Delete(ctx context.Context, f scope.Filter, id string) error
	// Finishing devuelve las pólizas con date_to en (from, to], ascendente.
	Finishing(ctx context.Context, f scope.Filter, from, to time.Time) ([]*entity.Insurance, error)
}

// ReservationListParams filtros opcionales del listado de reservas.
type ReservationListParams struct {
	VehicleID string
	UserID    string
}

// ReservationRepository puerto de persistencia para reservas.
type ReservationRepository interface {
	Create(ctx context.Context, r *entity.Reservation) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Reservation, error)
	List(ctx context.Context, f scope.Filter, p ReservationListParams, limit, offset int) ([]*entity.Reservation, error)
	Update(ctx context.Context, f scope.Filter, r *entity.Reservation) error
	Delete(ctx context.Context, f scope.Filter, id string) error
	// Upcoming devuelve las reservas con date_from posterior a after, ascendente.
	Upcoming(ctx context.Context, f scope.Filter, after time.Time) ([]*entity.Reservation, error)
}

// CommentListParams filtros opcionales del listado de comentarios.
type CommentListParams struct {
	VehicleID string
	UserID    string
}

// CommentRepository puerto de persistencia para comentarios.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, f scope.Filter, id string) (*entity.Comment, error)
	List(ctx context.Context, f scope.Filter, p CommentListParams, limit, offset int) ([]*entity.Comment, error)
	Update(ctx context.Context, f scope.Filter, c *entity.Comment) error
	Delete(ctx context.Context, f scope.Filter, id string) error
}
