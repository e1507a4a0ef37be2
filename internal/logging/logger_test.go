package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rjones30/diracxx/internal/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log, err := logging.New(logging.Config{Level: "warn", OutputPaths: []string{path}})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))

	log.Info("dropped")
	log.Warn("kept", zap.String("reaction", "compton"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry)) // exactly one line
	require.Equal(t, "kept", entry["msg"])
	require.Equal(t, "compton", entry["reaction"])
	require.Equal(t, "warn", entry["level"])
}

func TestNewBadLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	require.Equal(t, "info", logging.DefaultConfig().Level)
	require.True(t, logging.DevelopmentConfig().Development)
	require.NotNil(t, logging.NewDefault())

	log, err := logging.New(logging.Config{})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
