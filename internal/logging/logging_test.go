package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/govorbis/internal/config"
)

func TestNewJSON(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"

	var buf bytes.Buffer
	log, err := New(cfg, &buf)
	require.NoError(t, err)

	log.WithField("bytes", 42).Info("packed")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "packed", entry["msg"])
	assert.EqualValues(t, 42, entry["bytes"])
}

func TestNewLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	log, err := New(cfg, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, err := New(cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
