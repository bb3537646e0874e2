package main

import (
	"context"
	"doctor-finder-service/internal/app/config"
	"doctor-finder-service/internal/app/drivers/database"
	"doctor-finder-service/internal/app/drivers/logger"
	"doctor-finder-service/internal/app/drivers/messaging"
	"doctor-finder-service/internal/app/drivers/storage"
	"doctor-finder-service/internal/app/services/core/availability"
	"doctor-finder-service/internal/app/services/core/directory"
	"doctor-finder-service/internal/app/services/core/doctors"
	"doctor-finder-service/internal/app/services/shared/events"
	sharedStorage "doctor-finder-service/internal/app/services/shared/storage"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

const seedTimeout = 5 * time.Minute

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Operator tooling for the doctor finder directory",
	}
	rootCmd.AddCommand(directoryCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nTag: %s\n", Version, Tag)
		},
	}
}

func directoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Import a doctor directory snapshot from object storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			object, _ := cmd.Flags().GetString("object")
			bucket, _ := cmd.Flags().GetString("bucket")
			return runDirectorySeed(cmd.Context(), bucket, object)
		},
	}
	cmd.Flags().String("object", "", "Snapshot object key")
	cmd.Flags().String("bucket", "", "Snapshot bucket (defaults to APP_MINIO_SNAPSHOT_BUCKET_NAME)")
	_ = cmd.MarkFlagRequired("object")
	return cmd
}

func runDirectorySeed(ctx context.Context, bucket, object string) error {
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return err
	}
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		return err
	}

	log := logger.NewLogrusLogger(internalConfig.App.Env, driverConfig.Logger.Level)
	if bucket == "" {
		bucket = internalConfig.Minio.SnapshotBucketName
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	minioClient, err := storage.NewMinio(driverConfig)
	if err != nil {
		return err
	}

	mongoDB, err := database.NewMongoDB(ctx, driverConfig)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoDB.Disconnect(context.Background())
	}()

	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		return err
	}
	defer rabbitMQ.Close()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return err
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	publisher, err := events.NewDirectoryEventPublisher(rabbitMQ, internalConfig.RabbitMQ.DirectoryQueue, zapLogger)
	if err != nil {
		return err
	}

	seeder := directory.NewSeeder(
		sharedStorage.NewMinioStorage(minioClient),
		doctors.NewDoctorMongoRepository(mongoDB, driverConfig.MongoDB.DbName),
		availability.NewAvailabilityMongoRepository(mongoDB, driverConfig.MongoDB.DbName),
		publisher,
		log,
	)

	result, err := seeder.SeedFromSnapshot(ctx, bucket, object)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"doctors_written":   result.DoctorsWritten,
		"calendars_written": result.CalendarsWritten,
		"events_published":  result.EventsPublished,
	}).Info("Directory snapshot imported")
	return nil
}
