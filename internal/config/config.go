package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// SearchDebounceMsEnv is the environment variable for the search debounce interval in milliseconds.
	SearchDebounceMsEnv = "SEARCH_DEBOUNCE_MS"

	// SeedSampleProductsEnv is the environment variable toggling the sample catalogue at startup.
	SeedSampleProductsEnv = "SEED_SAMPLE_PRODUCTS"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for SQS queue URL.
	SQSQueueURLEnv = "SQS_QUEUE_URL"

	// DefaultSearchDebounce is how long the search text must stay unchanged before it filters.
	DefaultSearchDebounce = 500 * time.Millisecond
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the application configuration.
type Config struct {
	DebugMode          bool
	HTTPServer         Server
	MetricsServer      Server
	Search             Search
	SeedSampleProducts bool
	AWS                AWSConfig
}

// Search represents the search box settings.
type Search struct {
	Debounce time.Duration
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region      string
	Endpoint    string
	SQSQueueURL string
}

// NotificationsEnabled reports whether product changes are published to SQS.
func (a AWSConfig) NotificationsEnabled() bool {
	return a.SQSQueueURL != ""
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}

	if err := allNumbers(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	if c.Search.Debounce < 0 {
		return fmt.Errorf("%s must not be negative", SearchDebounceMsEnv)
	}

	return nil
}

// ValidateNotifications checks the settings a queue consumer cannot run without.
func (c *Config) ValidateNotifications() error {
	if err := allNonEmpty(map[string]string{
		AWSRegionEnv:   c.AWS.Region,
		SQSQueueURLEnv: c.AWS.SQSQueueURL,
	}); err != nil {
		return fmt.Errorf("AWS configuration incomplete: %w", err)
	}
	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsMillis(name string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	if err := allNumbers(map[string]string{name: raw}); err != nil {
		return 0, err
	}
	ms, _ := strconv.Atoi(raw)
	return time.Duration(ms) * time.Millisecond, nil
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	debounce, err := getEnvAsMillis(SearchDebounceMsEnv, DefaultSearchDebounce)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		Search: Search{
			Debounce: debounce,
		},
		SeedSampleProducts: getEnvAsBool(SeedSampleProductsEnv, true),
		AWS: AWSConfig{
			Region:      os.Getenv(AWSRegionEnv),
			Endpoint:    os.Getenv(AWSEndpointEnv),
			SQSQueueURL: os.Getenv(SQSQueueURLEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
