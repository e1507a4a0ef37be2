package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/rjones30/diracxx/internal/config"
	"github.com/rjones30/diracxx/kinematics"
	"github.com/rjones30/diracxx/xsect"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and returns what it printed on stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestComptonJSON(t *testing.T) {
	out, err := run(t, "compton", "--format", "json", "--points", "5", "--workers", "2")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Equal(t, "compton", r.Reaction)
	require.Equal(t, xsect.DefaultConstants(), r.Constants)
	require.Len(t, r.Rows, 5)
	require.InDelta(t, 0.05, r.Rows[0][0], 1e-15)
	for _, row := range r.Rows {
		require.Len(t, row, len(r.Columns))
		require.Greater(t, row[2], 0.0)
		require.InDelta(t, 1, row[3], 1e-8)
	}
	require.InDelta(t, 1, r.Summary["mean"], 1e-8)
	require.Less(t, r.Summary["stddev"], 1e-8)
}

func TestPairTable(t *testing.T) {
	out, err := run(t, "pair", "--points", "3")
	require.NoError(t, err)
	require.Contains(t, out, "# pair, GeV")
	require.Contains(t, out, "dsigma")
	require.NotContains(t, out, "# mean")

	_, err = run(t, "pair", "--x-max", "1")
	require.ErrorIs(t, err, kinematics.ErrUnphysical)
}

func TestBremsYAML(t *testing.T) {
	out, err := run(t, "brems", "--format", "yaml", "--points", "4", "--energy", "3")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, "bremsstrahlung", r.Reaction)
	require.Len(t, r.Rows, 4)
	require.InDelta(t, 0.15, r.Rows[0][0], 1e-12) // k = 0.05·E
	for _, row := range r.Rows {
		require.Greater(t, row[2], 0.0)
	}
}

func TestConstants(t *testing.T) {
	t.Setenv("DIRACXX_CONSTANTS_ALPHA", "0.0078125")
	out, err := run(t, "constants", "--workers", "3", "--format", "yaml")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	require.Equal(t, 3, cfg.Scan.Workers) // flag
	require.Equal(t, 0.0078125, cfg.Constants.Alpha)
	require.Equal(t, xsect.DefaultHbarcSqr, cfg.Constants.HbarcSqr)
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "constants", "--format", "xml")
	require.Error(t, err)

	_, err = run(t, "compton", "--workers", "0")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "compton", "--points", "0")
	require.Error(t, err)

	_, err = run(t, "compton", "extra")
	require.Error(t, err)
}

func TestLinspace(t *testing.T) {
	require.Equal(t, []float64{0, 0.5, 1}, linspace(0, 1, 3))
	require.Equal(t, []float64{2}, linspace(2, 5, 1))
	require.Empty(t, linspace(0, 1, -2))
}
