package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/auth"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.Usecase
	CompanyUC     *usecase.CompanyUsecase
	UserUC        *usecase.UserUsecase
	VehicleUC     *usecase.VehicleUsecase
	DocumentUC    *usecase.DocumentUsecase
	RefuelUC      *usecase.RefuelUsecase
	EventUC       *usecase.EventUsecase
	InsuranceUC   *usecase.InsuranceUsecase
	ReservationUC *usecase.ReservationUsecase
	CommentUC     *usecase.CommentUsecase
	JWTSecret     string
}

// Router registra las rutas de la API. Las rutas fijas (me, stats, finishing,
// upcoming) van antes que las rutas con :id para que Fiber no las capture
// como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Vehicles (protegido)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Get("/:id/reports/fuel", vehicleHandler.FuelReport)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Documents (protegido)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Post("/:id/file", documentHandler.UploadFile)
	documents.Get("/:id/file", documentHandler.DownloadFile)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)

	// Refuels (protegido)
	refuels := protected.Group("/refuels")
	refuelHandler := NewRefuelHandler(deps.RefuelUC)
	refuels.Post("/", refuelHandler.Create)
	refuels.Get("/", refuelHandler.List)
	refuels.Get("/stats", refuelHandler.YearlyStats)
	refuels.Get("/:id", refuelHandler.GetByID)
	refuels.Put("/:id", refuelHandler.Update)
	refuels.Delete("/:id", refuelHandler.Delete)

	// Events (protegido)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	// Insurances (protegido)
	insurances := protected.Group("/insurances")
	insuranceHandler := NewInsuranceHandler(deps.InsuranceUC)
	insurances.Post("/", insuranceHandler.Create)
	insurances.Get("/", insuranceHandler.List)
	insurances.Get("/finishing", insuranceHandler.Finishing)
	insurances.Get("/:id", insuranceHandler.GetByID)
	insurances.Put("/:id", insuranceHandler.Update)
	insurances.Delete("/:id", insuranceHandler.Delete)

	// Reservations (protegido)
	reservations := protected.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/", reservationHandler.List)
	reservations.Get("/upcoming", reservationHandler.Upcoming)
	reservations.Get("/:id", reservationHandler.GetByID)
	reservations.Put("/:id", reservationHandler.Update)
	reservations.Delete("/:id", reservationHandler.Delete)

	// Comments (protegido)
	comments := protected.Group("/comments")
	commentHandler := NewCommentHandler(deps.CommentUC)
	comments.Post("/", commentHandler.Create)
	comments.Get("/", commentHandler.List)
	comments.Get("/:id", commentHandler.GetByID)
	comments.Put("/:id", commentHandler.Update)
	comments.Delete("/:id", commentHandler.Delete)
}
