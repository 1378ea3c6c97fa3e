package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutFileIsDisabled(t *testing.T) {
	logger, closer, err := New("", "info")

	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closer, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug().Str("cmd", "select").Msg("command applied")
	logger.Trace().Msg("below level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry), "exactly one JSON line expected: %s", data)
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "select", entry["cmd"])
	assert.Equal(t, "tictactoe", entry["app"])
	assert.Contains(t, entry, "time")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New("", "loud")

	assert.Error(t, err)
}
