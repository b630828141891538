package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	_ "github.com/agendly/booking-system/docs" // swagger spec

	"github.com/agendly/booking-system/internal/api/handler"
	"github.com/agendly/booking-system/internal/api/middleware"
	"github.com/agendly/booking-system/internal/core/service"
	"github.com/agendly/booking-system/internal/infrastructure/config"
	mongodb "github.com/agendly/booking-system/internal/infrastructure/db/mongo"
	"github.com/agendly/booking-system/internal/infrastructure/db/mysql"
	"github.com/agendly/booking-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, mdb *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(db)
	apptRepo := mysql.NewAppointmentRepository(db)
	notifRepo := mongodb.NewNotificationRepository(mdb)
	mailQueue := queue.NewMailProducer(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	bookingService := service.NewBookingService(userRepo, apptRepo, notifRepo, mailQueue, log)
	scheduleService := service.NewScheduleService(userRepo, apptRepo)
	notifService := service.NewNotificationService(userRepo, notifRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	apptHandler := handler.NewAppointmentHandler(bookingService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	notifHandler := handler.NewNotificationHandler(notifService)

	// --- Public routes ---
	e.POST("/users", userHandler.Register)
	e.POST("/sessions", authHandler.Login)

	// --- Authenticated routes ---
	auth := e.Group("", middleware.Auth(cfg.JWTSecret))
	auth.PUT("/users", userHandler.Update)
	auth.GET("/appointments", apptHandler.List)
	auth.POST("/appointments", apptHandler.Create)
	auth.DELETE("/appointments/:id", apptHandler.Cancel)
	auth.GET("/schedule", scheduleHandler.Daily)
	auth.GET("/notifications", notifHandler.List)
	auth.PUT("/notifications/:id", notifHandler.MarkRead)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, mdb, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
