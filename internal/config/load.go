package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load,
// e.g. SAJU_SERVER_PORT.
const EnvPrefix = "SAJU"

// FileEnv names the environment variable holding an explicit config file
// path. When it is unset the optional ./config.yaml is used.
const FileEnv = EnvPrefix + "_CONFIG_FILE"

// Default values applied before any file or environment source.
const (
	DefaultPort                   = 8080
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "json"
	DefaultReadTimeoutSeconds     = 15
	DefaultWriteTimeoutSeconds    = 15
	DefaultShutdownTimeoutSeconds = 10
	DefaultMaxBodyBytes           = 1 << 16
	DefaultBatchWorkers           = 4
	DefaultMaxBatchRecords        = 100
)

// ErrValidation is returned when the loaded configuration fails validation.
var ErrValidation = errors.New("config validation failed")

// Load configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return load("")
}

// LoadFromFile is like Load but reads the given YAML file, which must exist.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_format", DefaultLogFormat)
	v.SetDefault("server.read_timeout_seconds", DefaultReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", DefaultWriteTimeoutSeconds)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("api.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("api.batch_workers", DefaultBatchWorkers)
	v.SetDefault("api.max_batch_records", DefaultMaxBatchRecords)

	// Configure file source
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
