package commons

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// APIKey is passed through to the provider unchecked; a missing key
	// surfaces as a provider error on mount.
	APIKey           string        `env:"EXCHANGE_RATE_API_KEY"`
	APIBaseURL       string        `env:"EXCHANGE_RATE_API_URL" env-default:"https://v6.exchangerate-api.com"`
	RateFetchTimeout time.Duration `env:"RATE_FETCH_TIMEOUT" env-default:"0s"`
	ServerPort       uint16        `env:"SERVER_PORT" env-default:"8080"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPass        string        `env:"REDIS_PASSWORD"`
	SessionTTL       time.Duration `env:"SESSION_TTL" env-default:"30m"`
	LogLevel         string        `env:"LOG_LEVEL" env-default:"info"`
	RateLimitRPS     float64       `env:"RATE_LIMIT_RPS" env-default:"10"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return Config{}, fmt.Errorf("configuration errors occurred: %w", err)
	}
	if config.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("configuration errors occurred: SESSION_TTL must be positive")
	}
	return config, nil
}
