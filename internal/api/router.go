package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/api/handler"
	"github.com/smarthealthcare/clinic-api/internal/api/middleware"
	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/service"
	"github.com/smarthealthcare/clinic-api/internal/infrastructure/db/postgres"
	redisdb "github.com/smarthealthcare/clinic-api/internal/infrastructure/db/redis"
	"github.com/smarthealthcare/clinic-api/internal/ws"
)

// RouterConfig carries the assembled dependencies for route registration.
// Redis is nil when token revocation is disabled.
type RouterConfig struct {
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Hub       *ws.Hub
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	var revoker service.Revoker
	if cfg.Redis != nil {
		revoker = redisdb.NewRevocationStore(cfg.Redis)
	}
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, revoker)

	userRepo := postgres.NewUserRepository(cfg.DB)
	patientRepo := postgres.NewPatientRepository(cfg.DB)
	doctorRepo := postgres.NewDoctorRepository(cfg.DB)
	appointmentRepo := postgres.NewAppointmentRepository(cfg.DB)
	recordRepo := postgres.NewRecordRepository(cfg.DB)

	authService := service.NewAuthService(userRepo, tokenService, cfg.Log)
	patientService := service.NewPatientService(patientRepo, cfg.Log)
	doctorService := service.NewDoctorService(doctorRepo, cfg.Log)
	appointmentService := service.NewAppointmentService(appointmentRepo, cfg.Hub, cfg.Log)
	recordService := service.NewRecordService(recordRepo, cfg.Log)

	authHandler := handler.NewAuthHandler(authService, tokenService, cfg.Redis != nil)
	tokenHandler := handler.NewTokenHandler()
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	recordHandler := handler.NewRecordHandler(recordService)
	wsHandler := handler.NewWSHandler(cfg.Hub, cfg.Log)

	auth := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleDoctor)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, auth)
	e.GET("/token/validate", tokenHandler.Validate, auth)

	// --- Real-time channel ---
	e.GET("/ws", wsHandler.Connect)

	// --- Patients ---
	e.GET("/patients", patientHandler.List, auth, staffOnly)
	e.GET("/patients/search", patientHandler.Search, auth, staffOnly)
	e.POST("/patients", patientHandler.Create)
	e.PUT("/patients/:id", patientHandler.Update)
	e.DELETE("/patients/:id", patientHandler.Delete)

	// --- Doctors ---
	e.GET("/doctors", doctorHandler.List)
	e.GET("/doctors/search", doctorHandler.Search, auth, staffOnly)
	e.POST("/doctors", doctorHandler.Create, auth, adminOnly)
	e.PUT("/doctors/:id", doctorHandler.Update)
	e.DELETE("/doctors/:id", doctorHandler.Delete)

	// --- Appointments ---
	e.GET("/appointments", appointmentHandler.List)
	e.GET("/appointments/filter", appointmentHandler.Filter, auth, staffOnly)
	e.POST("/appointments", appointmentHandler.Schedule, auth, staffOnly)
	e.PUT("/appointments/:id", appointmentHandler.UpdateStatus)
	e.DELETE("/appointments/:id", appointmentHandler.Delete, auth, adminOnly)

	// --- Medical records ---
	e.GET("/medical-records", recordHandler.List)
	e.POST("/medical-records", recordHandler.Create)
	e.PUT("/medical-records/:id", recordHandler.Update)
	e.DELETE("/medical-records/:id", recordHandler.Delete)

	// --- Probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Redis)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
