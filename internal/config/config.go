package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	API    APIConfig    `mapstructure:"api"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// APIConfig contains settings for the HTTP request handling layer.
type APIConfig struct {
	// MaxBodyBytes caps the size of decoded request bodies.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"gt=0"`

	// BatchWorkers is the number of readings computed concurrently per
	// batch request.
	BatchWorkers int `mapstructure:"batch_workers" validate:"gt=0,lte=64"`

	// MaxBatchRecords caps the number of records in one batch request.
	MaxBatchRecords int `mapstructure:"max_batch_records" validate:"gt=0"`
}
