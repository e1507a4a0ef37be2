package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rjones30/diracxx/internal/config"
	"github.com/rjones30/diracxx/xsect"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	require.Equal(t, xsect.DefaultConstants(), cfg.XsectConstants())
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 4, cfg.Scan.Workers)
	require.True(t, cfg.Check.Enabled)
	require.Equal(t, xsect.DefaultCheckTolerance, cfg.Check.Tolerance)

	e := xsect.New(cfg.EngineOptions(zap.NewNop())...)
	require.Equal(t, xsect.DefaultConstants(), e.Constants())
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diracxx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
constants:
  alpha: 0.0078125
log:
  level: debug
scan:
  workers: 2
check:
  enabled: false
`), 0o600))
	t.Setenv("DIRACXX_SCAN_WORKERS", "8")
	t.Setenv("DIRACXX_CONSTANTS_HBARC_SQR", "400")

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	require.Equal(t, 0.0078125, cfg.Constants.Alpha)
	require.Equal(t, 400.0, cfg.Constants.HbarcSqr) // env beats file
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 8, cfg.Scan.Workers)
	require.False(t, cfg.Check.Enabled)
}

func TestInvalid(t *testing.T) {
	for key, val := range map[string]any{
		config.KeyAlpha:          -1.0,
		config.KeyHbarcSqr:       0.0,
		config.KeyWorkers:        0,
		config.KeyCheckTolerance: -1e-3,
	} {
		v := config.NewViper()
		v.Set(key, val)
		_, err := config.Load(v, "")
		require.ErrorIs(t, err, config.ErrInvalid, key)
	}

	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
