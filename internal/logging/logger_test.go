package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(DefaultConfig(), &buf)
	require.NoError(t, err)

	logger.Info("scenario finished", zap.String("scenario", "literals"), zap.Int("cases", 11))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "scenario finished", entry["msg"])
	assert.Equal(t, "literals", entry["scenario"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Development(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	logger.Debug("case evaluated", zap.Int32("a", 1))
	assert.Contains(t, buf.String(), "case evaluated")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Info("ignored") })
}
