package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fleetflow/fleetflow-api/internal/application/auth"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	infrapdf "github.com/fleetflow/fleetflow-api/internal/infrastructure/pdf"
	"github.com/fleetflow/fleetflow-api/internal/infrastructure/postgres"
	"github.com/fleetflow/fleetflow-api/internal/infrastructure/storage"
	httpRouter "github.com/fleetflow/fleetflow-api/internal/interfaces/http"
	"github.com/fleetflow/fleetflow-api/pkg/config"
	"github.com/fleetflow/fleetflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	refuelRepo := postgres.NewRefuelRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	insuranceRepo := postgres.NewInsuranceRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStore, err := storage.NewMinioStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al object store")
	}

	fuelReports := infrapdf.NewMarotoFuelReportGenerator()

	authUC := auth.NewUsecase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	companyUC := usecase.NewCompanyUsecase(companyRepo, txRunner)
	userUC := usecase.NewUserUsecase(userRepo, txRunner)
	vehicleUC := usecase.NewVehicleUsecase(vehicleRepo, refuelRepo, txRunner, fuelReports)
	documentUC := usecase.NewDocumentUsecase(documentRepo, txRunner, fileStore, cfg.Storage.MaxSize)
	refuelUC := usecase.NewRefuelUsecase(refuelRepo, txRunner)
	eventUC := usecase.NewEventUsecase(eventRepo, txRunner)
	insuranceUC := usecase.NewInsuranceUsecase(insuranceRepo, txRunner)
	reservationUC := usecase.NewReservationUsecase(reservationRepo, txRunner)
	commentUC := usecase.NewCommentUsecase(commentRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FleetFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		UserUC:        userUC,
		VehicleUC:     vehicleUC,
		DocumentUC:    documentUC,
		RefuelUC:      refuelUC,
		EventUC:       eventUC,
		InsuranceUC:   insuranceUC,
		ReservationUC: reservationUC,
		CommentUC:     commentUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
