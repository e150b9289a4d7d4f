package logger_test

import (
	"testing"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	old := logger.Log
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Log = old })
	return logs
}

func TestInitialize(t *testing.T) {
	old := logger.Log
	defer func() { logger.Log = old }()

	assert.NoError(t, logger.Initialize("debug"))
	assert.Error(t, logger.Initialize("loud"))
}

func TestLogger_Info(t *testing.T) {
	logs := observe(t)

	logger.Info("Test info message")
	logger.Infof("fetched %d rates", 19)
	logger.Infow("widget mounted", "id", "abc")

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "Test info message", entries[0].Message)
	assert.Equal(t, "fetched 19 rates", entries[1].Message)
	assert.Equal(t, "abc", entries[2].ContextMap()["id"])
	for _, e := range entries {
		assert.Equal(t, zapcore.InfoLevel, e.Level)
	}
}

func TestLogger_Error(t *testing.T) {
	logs := observe(t)

	logger.Error("Test error message")
	logger.Errorf("failed to fetch rates: %v", "timeout")
	logger.Errorw("conversion failed", "target", "ZAR")

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "Test error message", entries[0].Message)
	assert.Equal(t, "failed to fetch rates: timeout", entries[1].Message)
	assert.Equal(t, "ZAR", entries[2].ContextMap()["target"])
}

func TestLogger_NopByDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Info("nobody listens")
		_ = logger.Sync()
	})
}
