package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := WithComponent("templater")
	logger.Info().Int("bytes", 42).Msg("processed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "templater", entry["component"])
	assert.Equal(t, "processed", entry["message"])
	assert.Equal(t, float64(42), entry["bytes"])
	assert.Equal(t, "info", entry["level"])
}

func TestConfigureLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigureConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, NoColor: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Info().Str("path", "build/web/index.html").Msg("written")
	out := buf.String()
	assert.Contains(t, out, "written")
	assert.Contains(t, out, "path=build/web/index.html")
}

func TestConfigureLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	Configure(Config{Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Warn().Msg("dropped")
	assert.Empty(t, buf.String())
}
