package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"milliseconds", "4000ms", 4 * time.Second},
		{"seconds", "15s", 15 * time.Second},
		{"hours", "24h", 24 * time.Hour},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDuration(tt.input))
		})
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single", "admin", []string{"admin"}},
		{"several with spaces", "admin, superUser ,ops", []string{"admin", "superUser", "ops"}},
		{"drops blanks", "admin,,", []string{"admin"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseList(tt.input))
		})
	}
}

func TestParseNumbers(t *testing.T) {
	assert.Equal(t, 10, parseInt("10"))
	assert.Equal(t, 100.0, parseFloat("100"))
	assert.Equal(t, 2.5, parseFloat("2.5"))
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "testdb")
	t.Setenv("SESSION_SECRET", "test-secret-key")
}

func TestLoad(t *testing.T) {
	t.Run("loads config with custom values", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("BACKEND_URL", "http://backend.local:5000/")
		t.Setenv("BACKEND_TIMEOUT", "5s")
		t.Setenv("CLASSIFIER_URL", "http://classifier.local/classify")
		t.Setenv("CLASSIFIER_MODE", "mock")
		t.Setenv("REDIS_URI", "redis.example.com:6379")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("DISPOSAL_TTL", "30m")
		t.Setenv("ADMIN_ROLES", "admin,superUser")
		t.Setenv("S3_ENDPOINT", "s3.example.com:9000")
		t.Setenv("S3_BUCKET", "items")
		t.Setenv("S3_USE_SSL", "true")
		t.Setenv("DEPOSIT_WEIGHT", "250")
		t.Setenv("REWARD_POINTS", "15")
		t.Setenv("BIN_OPEN_DURATION", "2s")
		t.Setenv("MAX_IMAGE_SIZE", "1024")
		t.Setenv("REWARD_WORKERS", "4")
		t.Setenv("REWARD_QUEUE_SIZE", "50")
		t.Setenv("DASHBOARD_TIMEZONE", "Africa/Johannesburg")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "testdb", cfg.MongoDatabase)
		assert.Equal(t, "test-secret-key", cfg.SessionSecret)
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "http://backend.local:5000", cfg.BackendURL)
		assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
		assert.Equal(t, "http://classifier.local/classify", cfg.ClassifierURL)
		assert.Equal(t, "mock", cfg.ClassifierMode)
		assert.Equal(t, "redis.example.com:6379", cfg.RedisURI)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, 30*time.Minute, cfg.DisposalTTL)
		assert.Equal(t, []string{"admin", "superUser"}, cfg.AdminRoles)
		assert.Equal(t, "s3.example.com:9000", cfg.S3Endpoint)
		assert.Equal(t, "items", cfg.S3Bucket)
		assert.True(t, cfg.S3UseSSL)
		assert.Equal(t, 250.0, cfg.DepositWeight)
		assert.Equal(t, 15, cfg.RewardPoints)
		assert.Equal(t, 2*time.Second, cfg.BinOpenDuration)
		assert.Equal(t, int64(1024), cfg.MaxImageSize)
		assert.Equal(t, 4, cfg.RewardWorkers)
		assert.Equal(t, 50, cfg.RewardQueueSize)
		assert.Equal(t, "Africa/Johannesburg", cfg.Location().String())
	})

	t.Run("uses default values for optional env vars", func(t *testing.T) {
		setRequired(t)

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "https://ecobin-back.onrender.com", cfg.BackendURL)
		assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
		assert.Equal(t, "http", cfg.ClassifierMode)
		assert.Equal(t, "localhost:6379", cfg.RedisURI)
		assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
		assert.Equal(t, time.Hour, cfg.DisposalTTL)
		assert.Equal(t, []string{"admin"}, cfg.AdminRoles)
		assert.Equal(t, "disposal-items", cfg.S3Bucket)
		assert.False(t, cfg.S3UseSSL)
		assert.Equal(t, 100.0, cfg.DepositWeight)
		assert.Equal(t, 10, cfg.RewardPoints)
		assert.Equal(t, 4*time.Second, cfg.BinOpenDuration)
		assert.Equal(t, int64(10<<20), cfg.MaxImageSize)
		assert.Equal(t, 2, cfg.RewardWorkers)
		assert.Equal(t, 100, cfg.RewardQueueSize)
		assert.Equal(t, time.UTC, cfg.Location())
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DASHBOARD_TIMEZONE", "Mars/Olympus")

		cfg := Load()

		assert.Equal(t, time.UTC, cfg.Location())
	})
}
