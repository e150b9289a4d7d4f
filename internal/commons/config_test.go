package commons_test

import (
	"os"
	"testing"
	"time"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/stretchr/testify/assert"
)

var configEnv = []string{
	"EXCHANGE_RATE_API_KEY",
	"EXCHANGE_RATE_API_URL",
	"RATE_FETCH_TIMEOUT",
	"SERVER_PORT",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"SESSION_TTL",
	"LOG_LEVEL",
	"RATE_LIMIT_RPS",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearConfigEnv(t)

		config, err := commons.LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, "", config.APIKey)
		assert.Equal(t, "https://v6.exchangerate-api.com", config.APIBaseURL)
		assert.Equal(t, time.Duration(0), config.RateFetchTimeout)
		assert.Equal(t, uint16(8080), config.ServerPort)
		assert.Equal(t, "", config.RedisAddr)
		assert.Equal(t, 30*time.Minute, config.SessionTTL)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, 10.0, config.RateLimitRPS)
	})

	t.Run("Valid configuration", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("EXCHANGE_RATE_API_KEY", "my-api-key")
		t.Setenv("EXCHANGE_RATE_API_URL", "http://localhost:9000")
		t.Setenv("RATE_FETCH_TIMEOUT", "5s")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_PASSWORD", "password")
		t.Setenv("SESSION_TTL", "1h")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("RATE_LIMIT_RPS", "2.5")

		config, err := commons.LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, "my-api-key", config.APIKey)
		assert.Equal(t, "http://localhost:9000", config.APIBaseURL)
		assert.Equal(t, 5*time.Second, config.RateFetchTimeout)
		assert.Equal(t, uint16(9090), config.ServerPort)
		assert.Equal(t, "localhost:6379", config.RedisAddr)
		assert.Equal(t, "password", config.RedisPass)
		assert.Equal(t, time.Hour, config.SessionTTL)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, 2.5, config.RateLimitRPS)
	})

	t.Run("Invalid SERVER_PORT", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("SERVER_PORT", "invalid-port")

		_, err := commons.LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "configuration errors occurred")
	})

	t.Run("Non positive SESSION_TTL", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("SESSION_TTL", "0s")

		_, err := commons.LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_TTL")
	})
}
