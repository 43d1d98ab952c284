package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/iyhunko/inventory-manager/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvFilePath, "testdata/does-not-exist.env")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(config.DebugModeEnv, "true")
	t.Setenv(config.SearchDebounceMsEnv, "250")
	t.Setenv(config.SeedSampleProductsEnv, "false")
	t.Setenv(config.AWSRegionEnv, "us-east-1")
	t.Setenv(config.AWSEndpointEnv, "http://localhost:4566")
	t.Setenv(config.SQSQueueURLEnv, "http://localhost:4566/000000000000/product-notifications")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err, "loading config should not return error")

	assert.True(t, conf.DebugMode, "DebugMode should be true")
	assert.Equal(t, "8080", conf.HTTPServer.Port, "HTTP Server Port should be '8080'")
	assert.Equal(t, "9090", conf.MetricsServer.Port, "Metrics Server Port should be '9090'")
	assert.Equal(t, 250*time.Millisecond, conf.Search.Debounce)
	assert.False(t, conf.SeedSampleProducts)
	assert.Equal(t, "us-east-1", conf.AWS.Region)
	assert.Equal(t, "http://localhost:4566", conf.AWS.Endpoint)
	assert.True(t, conf.AWS.NotificationsEnabled())
	assert.NoError(t, conf.ValidateNotifications())
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(config.DebugModeEnv, "")
	t.Setenv(config.SearchDebounceMsEnv, "")
	t.Setenv(config.SeedSampleProductsEnv, "")
	t.Setenv(config.SQSQueueURLEnv, "")
	t.Setenv(config.AWSRegionEnv, "")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.False(t, conf.DebugMode)
	assert.Equal(t, config.DefaultSearchDebounce, conf.Search.Debounce)
	assert.True(t, conf.SeedSampleProducts)
	assert.False(t, conf.AWS.NotificationsEnabled())
	assert.True(t, errors.Is(conf.ValidateNotifications(), config.ErrMissingConfig))
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Run("missing http port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv(config.HTTPServerPortEnv, "")

		_, err := config.LoadFromEnv()

		assert.True(t, errors.Is(err, config.ErrMissingConfig))
	})

	t.Run("non numeric metrics port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv(config.MetricsServerPortEnv, "metrics")

		_, err := config.LoadFromEnv()

		assert.Error(t, err)
	})

	t.Run("non numeric debounce", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv(config.SearchDebounceMsEnv, "soon")

		_, err := config.LoadFromEnv()

		assert.Error(t, err)
	})

	t.Run("negative debounce", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv(config.SearchDebounceMsEnv, "-1")

		_, err := config.LoadFromEnv()

		assert.Error(t, err)
	})
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
	}{
		{"GetEnvAsBool_True", "true", false, true},
		{"GetEnvAsBool_False", "false", true, false},
		{"GetEnvAsBool_Invalid", "invalid", true, true},
		{"GetEnvAsBool_Empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got := config.GetEnvAsBool("TEST_ENV", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvAsMillis(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     time.Duration
		wantErr  bool
	}{
		{"GetEnvAsMillis_Empty", "", time.Second, false},
		{"GetEnvAsMillis_Valid", "750", 750 * time.Millisecond, false},
		{"GetEnvAsMillis_Zero", "0", 0, false},
		{"GetEnvAsMillis_Invalid", "fast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got, err := config.GetEnvAsMillis("TEST_ENV", time.Second)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr bool
	}{
		{"AllNumbers_Valid", map[string]string{"key1": "123", "key2": "456", "key3": "789"}, false},
		{"AllNumbers_Invalid", map[string]string{"key1": "123", "key2": "abc", "key3": "789"}, true},
		{"AllNumbers_EmptyString", map[string]string{"key1": "123", "key2": "", "key3": "789"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.AllNumbers(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr bool
	}{
		{"AllNonEmpty_Valid", map[string]string{"key1": "host", "key2": "user", "key3": "pass"}, false},
		{"AllNonEmpty_EmptyString", map[string]string{"key1": "host", "key2": "", "key3": "pass"}, true},
		{"AllNonEmpty_AllEmpty", map[string]string{"key1": "", "key2": "", "key3": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.AllNonEmpty(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
