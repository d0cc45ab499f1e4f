package http

import (
	"context"
	"time"

	"github.com/flathunt/commute-service/internal/config"
	"github.com/flathunt/commute-service/internal/delivery/http/handler"
	"github.com/flathunt/commute-service/internal/delivery/http/middleware"
	pkgerrors "github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server for the commute service.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	routeHandler      *handler.RouteHandler
	propertyHandler   *handler.PropertyHandler
	validationHandler *handler.ValidationHandler
}

// NewServer creates the HTTP server with middleware and routes set up.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	propertyHandler *handler.PropertyHandler,
	validationHandler *handler.ValidationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Commute Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		routeHandler:      routeHandler,
		propertyHandler:   propertyHandler,
		validationHandler: validationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Route resolution
	api.Post("/routes", s.routeHandler.ResolveRoutes)

	// Validation
	api.Post("/validate", s.validationHandler.Validate)

	// Stored properties
	api.Post("/properties", s.propertyHandler.Create)
	api.Get("/properties", s.propertyHandler.List)
	api.Get("/properties/:id", s.propertyHandler.Get)
	api.Delete("/properties/:id", s.propertyHandler.Delete)
	api.Post("/properties/:id/routes", s.propertyHandler.RefreshRoutes)
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	return s.app.Listen(s.config.GetServerAddr())
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if fiberErr, ok := err.(*fiber.Error); ok {
			code = fiberErr.Code
		}
		if appErr, ok := err.(*pkgerrors.AppError); ok {
			code = appErr.StatusCode
		}

		logger.Error("Unhandled request error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err))

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
