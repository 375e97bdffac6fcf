package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/logger"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&logger.Config{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("translation unavailable", zap.String("url", "https://pokeapi.co/api/v2/type/1/"))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "translation unavailable", entry["msg"])
	assert.Equal(t, "https://pokeapi.co/api/v2/type/1/", entry["url"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&logger.Config{Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("listening")
	require.NoError(t, log.Sync())

	assert.Contains(t, buf.String(), "INFO | ")
	assert.Contains(t, buf.String(), "listening")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewValidation(t *testing.T) {
	_, err := logger.New(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = logger.New(&logger.Config{Level: "loud", Format: "xml"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Format: must be console or json")
	assert.Contains(t, err.Error(), `Level: unknown level "loud"`)
}
