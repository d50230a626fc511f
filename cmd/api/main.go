package main

import (
	"vanails/cmd/internal/config"
	"vanails/cmd/internal/domain/sqlite"
	"vanails/cmd/internal/domain/sqlite/repository"
	"vanails/cmd/internal/metrics"
	"vanails/cmd/internal/routes"
	"vanails/cmd/internal/service"
	"vanails/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", err)
	}

	validate := validator.New()
	registerValidators(validate)

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	m := metrics.New(cfg.MetricsNamespace)

	// Getting repositories
	apptRepo := repository.NewAppointmentRepository(db)

	// Getting services
	bookingService := service.NewBookingService(apptRepo, validate, m)
	apptService := service.NewAppointmentService(apptRepo, validate, m, cfg.Location)

	// Getting routes
	clientRoutes := routes.NewClientDefault(bookingService)
	apptRoutes := routes.NewAppointmentDefault(apptService)

	e := echo.New()
	e.Use(middleware.CORS())

	// Admin view over the bookings
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.PUT("/api/appointments", apptRoutes.UpdateAppointment)
	e.DELETE("/api/appointments", apptRoutes.DeleteAppointment)

	// Public booking flow: availability per day, new bookings, and the
	// static service catalog shown on the marketing page
	e.GET("/api/clients", clientRoutes.GetAvailability)
	e.POST("/api/clients", clientRoutes.CreateClient)
	e.GET("/api/services", clientRoutes.GetServices)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	err = e.Start(":" + cfg.Port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("slotdate", validators.IsSlotDate)
	_ = validate.RegisterValidation("serviceid", validators.IsServiceID)
}
