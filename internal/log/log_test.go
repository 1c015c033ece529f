package log_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/cie1931/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLogLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		lvl, err := log.ParseLogLevel(s)
		require.NoError(t, err)
		assert.Equal(t, log.LogLevel(s), lvl)
	}

	_, err := log.ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LogWarn, &buf)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("table", "Lightness1000x255"))
	log.Sync(logger)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "Lightness1000x255")
}

func TestNew_DebugLevelEmitsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LogDebug, &buf)

	logger.Debug("detail")
	log.Sync(logger)

	assert.Contains(t, buf.String(), "detail")
}
