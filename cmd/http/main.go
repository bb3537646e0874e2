package main

import (
	"context"
	"doctor-finder-service/internal/app/config"
	"doctor-finder-service/internal/app/delivery/http/controllers"
	"doctor-finder-service/internal/app/delivery/http/middlewares"
	"doctor-finder-service/internal/app/delivery/http/routers"
	"doctor-finder-service/internal/app/drivers/database"
	"doctor-finder-service/internal/app/drivers/logger"
	"doctor-finder-service/internal/app/drivers/messaging"
	"doctor-finder-service/internal/app/services/core/availability"
	"doctor-finder-service/internal/app/services/core/distance"
	"doctor-finder-service/internal/app/services/core/doctors"
	"doctor-finder-service/internal/app/services/shared/events"
	"doctor-finder-service/internal/app/services/shared/locker"
	"doctor-finder-service/internal/app/services/shared/redis"
	"doctor-finder-service/internal/pkg/utils"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, driverConfig)
	if err != nil {
		log.Fatalf("Error connecting to mongo: %v", err)
	}
	log.Println("Successfully connected to mongo database")

	redisClient, err := database.NewRedisClient(ctx, driverConfig)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	log.Println("Successfully connected to redis")

	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		log.Fatalf("Error connecting to rabbitmq: %v", err)
	}
	log.Println("Successfully connected to rabbitMQ")

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(ctx, bootstrap, location)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("version", internalConfig.App.Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, location *time.Location) error {
	clock := utils.NewSystemClock(location)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Repositories
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	availabilityMongoRepository := availability.NewAvailabilityMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Caches
	distanceCache := distance.NewCache(bootstrap.InternalConfig.Cache.DistanceCacheSize, bootstrap.Logger)
	filterOptionsCache := doctors.NewFilterOptionsRedisCache(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.Cache.FilterOptionsCacheTTLInMinutes)*time.Minute,
		bootstrap.Logger,
	)

	// Usecases
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		availabilityMongoRepository,
		filterOptionsCache,
		distanceCache,
		clock,
		bootstrap.Logger,
	)
	availabilityUsecase := availability.NewAvailabilityUsecase(doctorMongoRepository, availabilityMongoRepository, clock, bootstrap.Logger)
	distanceUsecase := distance.NewDistanceUsecase(distanceCache, bootstrap.Logger)

	// Filter options warmup
	worker := doctors.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, doctorUsecase)
	worker.Start(ctx)
	bootstrap.WorkerStop = worker.Stop

	// Directory change events
	consumer, err := events.NewDirectoryEventConsumer(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.DirectoryQueue,
		doctorUsecase,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}
	err = consumer.Start(ctx)
	if err != nil {
		return err
	}
	bootstrap.ConsumerStop = consumer.Stop

	// HTTP
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)
	distanceController := controllers.NewDistanceController(bootstrap.Logger, distanceUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		doctorController,
		availabilityController,
		distanceController,
	)
	return nil
}
