package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel(""))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))
}

func TestZapLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := NewZapLogger(Options{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("hidden", nil)
	log.Info("Credit consumed", map[string]any{"user_id": "user-a", "credits": 4})
	log.Error("Grant failed", map[string]any{"error": errors.New("boom")})
	log.SetLevel(core.LogLevelError)
	log.Info("also hidden", nil)
	require.NoError(t, log.Flush())
	assert.Equal(t, core.LogLevelError, log.GetLevel())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Credit consumed", entry["message"])
	assert.Equal(t, "user-a", entry["user_id"])
	assert.Contains(t, entry, "timestamp")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "boom", entry["error"])
}
