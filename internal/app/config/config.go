package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// binding maps a nested config key to its environment variable and default.
type binding struct {
	key          string
	env          string
	defaultValue interface{}
}

var internalBindings = []binding{
	{"app.env", "APP_ENV", "development"},
	{"app.port", "APP_PORT", "8080"},
	{"app.version", "APP_VERSION", "v1"},
	{"app.address", "APP_ADDRESS", "localhost"},
	{"app.timezone", "APP_TIMEZONE", "America/Chicago"},
	{"app.endpoint_prefix", "APP_ENDPOINT_PREFIX", "api"},
	{"app.max_requests", "APP_MAX_REQUESTS", 20},
	{"app.shutdown_timeout_in_seconds", "APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10},
	{"app.filter_options_worker_cron_spec", "FILTER_OPTIONS_WORKER_CRON_SPEC", "@every 15m"},
	{"cache.distance_cache_size", "DISTANCE_CACHE_SIZE", 10000},
	{"cache.filter_options_cache_ttl_in_minutes", "FILTER_OPTIONS_CACHE_TTL_IN_MINUTES", 60},
	{"rabbitmq.directory_queue", "APP_RABBITMQ_DIRECTORY_QUEUE", "directory.changed"},
	{"minio.snapshot_bucket_name", "APP_MINIO_SNAPSHOT_BUCKET_NAME", "directory-snapshots"},
}

var driverBindings = []binding{
	{"mongodb.port", "MONGODB_PORT", "27017"},
	{"mongodb.host", "MONGODB_HOST", "localhost"},
	{"mongodb.username", "MONGODB_USERNAME", ""},
	{"mongodb.password", "MONGODB_PASSWORD", ""},
	{"mongodb.db_name", "MONGODB_DB_NAME", "doctor_finder"},
	{"redis.host", "REDIS_HOST", "localhost"},
	{"redis.port", "REDIS_PORT", "6379"},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"logger.level", "LOGGER_LEVEL", "debug"},
	{"logger.output_filename", "LOGGER_OUTPUT_FILENAME", "logger.log"},
	{"logger.output_error_filename", "LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"},
	{"rabbitmq.port", "RABBITMQ_PORT", "5672"},
	{"rabbitmq.host", "RABBITMQ_HOST", "localhost"},
	{"rabbitmq.username", "RABBITMQ_USERNAME", "guest"},
	{"rabbitmq.password", "RABBITMQ_PASSWORD", "guest"},
	{"minio.port", "MINIO_PORT", "9000"},
	{"minio.host", "MINIO_HOST", "localhost"},
	{"minio.username", "MINIO_USERNAME", "minioadmin"},
	{"minio.password", "MINIO_PASSWORD", "minioadmin"},
	{"minio.use_ssl", "MINIO_USE_SSL", false},
}

func NewInternalConfig() (*InternalConfig, error) {
	cfg := &InternalConfig{}
	if err := load(internalBindings, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewDriverConfig() (*DriverConfig, error) {
	cfg := &DriverConfig{}
	if err := load(driverBindings, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(bindings []binding, out interface{}) error {
	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.defaultValue)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return fmt.Errorf("bind env %s: %w", b.env, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}
