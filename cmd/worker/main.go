package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flathunt/commute-service/internal/config"
	"github.com/flathunt/commute-service/internal/infrastructure/google"
	"github.com/flathunt/commute-service/internal/pkg/logger"
	"github.com/flathunt/commute-service/internal/repository/postgres"
	redisRepo "github.com/flathunt/commute-service/internal/repository/redis"
	"github.com/flathunt/commute-service/internal/usecase"
	"github.com/flathunt/commute-service/internal/worker"
	"github.com/flathunt/commute-service/internal/worker/routes"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Enrichment Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Float64("station_speed_kmh", cfg.Routing.StationSpeedKmh),
		zap.Strings("stop_types", cfg.Routing.StopTypes))

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

	// 5. Initialize repositories
	directionsRepo := google.NewDirectionsClient(&cfg.Google, log)
	stopRepo := postgres.NewStopRepository(db)
	propertyRepo := redisRepo.NewPropertyRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient)

	// 6. Load validation criteria
	criteria, err := config.LoadCriteria(cfg.Routing.CriteriaFile)
	if err != nil {
		log.Fatal("Failed to load validation criteria",
			zap.String("path", cfg.Routing.CriteriaFile),
			zap.Error(err))
	}

	// 7. Initialize use cases
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

	// 8. Initialize workers
	routeWorker := routes.NewRouteEnrichmentWorker(
		streamRepo,
		routesUC,
		propertyValidator,
		criteria,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
	)

	// 9. Create worker manager and register workers
	workerManager := worker.NewManager(log)
	workerManager.Register(routeWorker)

	// 10. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
}
