package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Cache    AppCache    `mapstructure:"cache"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Minio    AppMinio    `mapstructure:"minio"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port"`
	Version                  string `mapstructure:"version"`
	Address                  string `mapstructure:"address"`
	Timezone                 string `mapstructure:"timezone"`
	EndpointPrefix           string `mapstructure:"endpoint_prefix"`
	MaxRequests              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds"`
	// FilterOptionsWorkerCronSpec schedules the filter options warmup (e.g., "@every 15m")
	FilterOptionsWorkerCronSpec string `mapstructure:"filter_options_worker_cron_spec"`
}

type AppCache struct {
	DistanceCacheSize              int `mapstructure:"distance_cache_size"`
	FilterOptionsCacheTTLInMinutes int `mapstructure:"filter_options_cache_ttl_in_minutes"`
}

type AppRabbitMQ struct {
	DirectoryQueue string `mapstructure:"directory_queue"`
}

type AppMinio struct {
	SnapshotBucketName string `mapstructure:"snapshot_bucket_name"`
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}
