package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/provider"
	"github.com/Lutefd/currency-widget/internal/server"
	"github.com/Lutefd/currency-widget/internal/service"
	"github.com/Lutefd/currency-widget/internal/session"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	godotenv.Load(".env")
	config, err := commons.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(config.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	store, err := newStore(config)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("Error closing session store: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	rateProvider := provider.NewExchangeRateAPIClient(
		config.APIKey,
		provider.WithBaseURL(config.APIBaseURL),
		provider.WithTimeout(config.RateFetchTimeout),
	)
	widgetService := service.NewWidgetService(ctx, store, rateProvider, metrics.NewWidgetMetrics(reg), config.SessionTTL)

	srv := server.NewServer(config, widgetService, reg)
	if err := srv.Start(ctx); err != nil {
		logger.Errorf("Server stopped: %v", err)
	}
	widgetService.Wait()
	logger.Info("Server shut down gracefully")
}

func newStore(config commons.Config) (session.Store, error) {
	if config.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, keeping widget sessions in memory")
		return session.NewMemoryStore(), nil
	}
	return session.NewRedisStore(config.RedisAddr, config.RedisPass)
}
