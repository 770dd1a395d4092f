package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Avangel08/furniro-sub001/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	app := config.AppConfig{Name: "furniro-api", Version: "test", Env: "production"}

	logger, err := NewLogger(config.LoggerConfig{Level: "DEBUG"}, app)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(config.LoggerConfig{Level: "loud"}, app)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLoggerDevelopmentConsole(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "warn"}, config.AppConfig{Name: "furniro-api", Env: "development"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}
