package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/smartclinic/portal/docs"
	"github.com/smartclinic/portal/internal/api/handler"
	"github.com/smartclinic/portal/internal/api/middleware"
	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
	"github.com/smartclinic/portal/internal/infrastructure/clinic"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions     ports.SessionContext
	Auth         ports.AuthClient
	Directory    ports.DirectoryService
	Admin        ports.AdminDirectoryService
	Appointments ports.AppointmentService
	Workflows    ports.BookingWorkflowFactory
	Clinic       *clinic.Client
	Redis        *redis.Client
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Sessions, deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic_portal"))
	e.Use(middleware.Session(deps.Sessions))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory, deps.Admin)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	bookingHandler := handler.NewBookingHandler(deps.Workflows)
	modalHandler := handler.NewModalHandler()

	// --- Portal routes ---
	portal := e.Group("/portal")

	portal.POST("/role/:role", authHandler.SelectRole)
	portal.POST("/login/:role", authHandler.Login)
	portal.POST("/signup/patient", authHandler.Signup)
	portal.POST("/logout", authHandler.Logout)

	portal.GET("/modals/:kind", modalHandler.Open)
	portal.POST("/modals/close", modalHandler.Close)

	portal.GET("/doctors", directoryHandler.List)
	portal.POST("/doctors", directoryHandler.Create, middleware.RBAC(domain.RoleAdmin))
	portal.DELETE("/doctors/:id", directoryHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	portal.GET("/appointments", appointmentHandler.Board, middleware.RBAC(domain.RoleDoctor))
	portal.PUT("/appointments", appointmentHandler.Update, middleware.RBAC(domain.RoleLoggedPatient))

	portal.POST("/bookings", bookingHandler.Start, middleware.RBAC(domain.RoleLoggedPatient))
	portal.POST("/bookings/confirm", bookingHandler.Confirm, middleware.RBAC(domain.RoleLoggedPatient))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Clinic)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
