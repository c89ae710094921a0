package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicalcanvas/practice-api/internal/api/handler"
	"github.com/clinicalcanvas/practice-api/internal/api/middleware"
	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/service"
	"github.com/clinicalcanvas/practice-api/internal/infrastructure/config"
	mongorepo "github.com/clinicalcanvas/practice-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/clinicalcanvas/practice-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("practice"))

	// --- Repositories ---
	authRepo := mongorepo.NewAuthRepository(db)
	clientRepo := mongorepo.NewClientRepository(db)
	appointmentRepo := mongorepo.NewAppointmentRepository(db)
	invoiceRepo := mongorepo.NewInvoiceRepository(db)
	noteRepo := mongorepo.NewNoteRepository(db)
	documentRepo := mongorepo.NewDocumentRepository(db)
	analyticsRepo := mongorepo.NewAnalyticsRepository(db)

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.Auth.TokenTTL)
	clientService := service.NewClientService(clientRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, log)
	noteService := service.NewNoteService(noteRepo, clientRepo, appointmentRepo, log)
	documentService := service.NewDocumentService(documentRepo, log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, log)

	loginLimiter := redisinfra.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, loginLimiter, log)
	clientHandler := handler.NewClientHandler(clientService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	noteHandler := handler.NewNoteHandler(noteService)
	documentHandler := handler.NewDocumentHandler(documentService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/api/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	g := e.Group("/api")
	g.Use(middleware.Auth(cfg.JWTSecret))
	g.Use(middleware.RBAC(domain.RoleTherapist, domain.RoleAdmin))

	g.GET("/clients", clientHandler.List)
	g.POST("/clients", clientHandler.Create)
	g.GET("/clients/:id", clientHandler.Get)
	g.PUT("/clients/:id", clientHandler.Update)
	g.DELETE("/clients/:id", clientHandler.Delete)

	g.GET("/appointments", appointmentHandler.List)
	g.POST("/appointments", appointmentHandler.Create)
	g.PUT("/appointments/:id", appointmentHandler.Update)
	g.DELETE("/appointments/:id", appointmentHandler.Delete)

	g.GET("/invoices", invoiceHandler.List)
	g.POST("/invoices", invoiceHandler.Create)
	g.PUT("/invoices/:id", invoiceHandler.Update)

	g.GET("/notes", noteHandler.List)
	g.POST("/notes", noteHandler.Create)

	g.GET("/documents", documentHandler.List)
	g.POST("/documents", documentHandler.Create)

	g.GET("/analytics/dashboard", analyticsHandler.Dashboard)

	return e
}
