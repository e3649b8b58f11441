package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/init-pkg/cinecheck/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var cfg config.Config
	cfg.Env = "test"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	log := NewWithWriter(&cfg, &buf)

	log.Info("hidden")
	log.Warn("catalog fetch failed", "ref", "./LISTADO_PELIS.xlsx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog fetch failed", entry["msg"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "./LISTADO_PELIS.xlsx", entry["ref"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, -4, int(parseLevel("debug")))
	assert.Equal(t, 0, int(parseLevel("nonsense")))
	assert.Equal(t, 8, int(parseLevel("ERROR")))
}
