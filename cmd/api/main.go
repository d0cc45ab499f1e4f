package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flathunt/commute-service/internal/config"
	httpDelivery "github.com/flathunt/commute-service/internal/delivery/http"
	"github.com/flathunt/commute-service/internal/delivery/http/handler"
	"github.com/flathunt/commute-service/internal/infrastructure/google"
	"github.com/flathunt/commute-service/internal/pkg/logger"
	"github.com/flathunt/commute-service/internal/repository/postgres"
	redisRepo "github.com/flathunt/commute-service/internal/repository/redis"
	"github.com/flathunt/commute-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Commute Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (transit stop directory)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	directionsRepo := google.NewDirectionsClient(&cfg.Google, log)
	stopRepo := postgres.NewStopRepository(db)
	propertyRepo := redisRepo.NewPropertyRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Load validation criteria
	criteria, err := config.LoadCriteria(cfg.Routing.CriteriaFile)
	if err != nil {
		log.Fatal("Failed to load validation criteria",
			zap.String("path", cfg.Routing.CriteriaFile),
			zap.Error(err))
	}
	log.Info("Validation criteria loaded",
		zap.Int("pois", len(criteria.PointsOfInterest)))

	// 8. Initialize use cases
	routeResolver := usecase.NewRouteResolver(directionsRepo, log)

	stationResolver := usecase.NewNearestStationResolver(
		stopRepo,
		routeResolver,
		log,
		cfg.Routing.StationSpeedKmh,
		cfg.Routing.StopTypes,
	)

	poiSelector := usecase.NewPOIRouteSelector(routeResolver, stationResolver, log)

	routesUC := usecase.NewPropertyRoutesUseCase(poiSelector, propertyRepo, log)

	propertyValidator := usecase.NewPropertyValidator(log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routesUC, log)
	propertyHandler := handler.NewPropertyHandler(propertyRepo, routesUC, propertyValidator, criteria, log)
	validationHandler := handler.NewValidationHandler(propertyValidator, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		propertyHandler,
		validationHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
