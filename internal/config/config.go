// Package config loads the settings of the command-line tools with viper.
//
// Precedence, lowest first: built-in defaults, the optional config file
// (YAML, TOML or JSON by extension), DIRACXX_* environment variables, and
// flags bound by the caller. Keys use dots, which map to underscores in the
// environment: constants.hbarc_sqr is DIRACXX_CONSTANTS_HBARC_SQR.
package config

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/internal/logging"
	"github.com/rjones30/diracxx/xsect"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "DIRACXX"

// Keys.
const (
	KeyAlpha          = "constants.alpha"
	KeyHbarcSqr       = "constants.hbarc_sqr"
	KeyLogLevel       = "log.level"
	KeyLogDevelopment = "log.development"
	KeyWorkers        = "scan.workers"
	KeyCheckEnabled   = "check.enabled"
	KeyCheckTolerance = "check.tolerance"
)

// ErrInvalid is returned by Load for a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full set of tool settings.
type Config struct {
	Constants Constants      `mapstructure:"constants" json:"constants" yaml:"constants"`
	Log       logging.Config `mapstructure:"log" json:"log" yaml:"log"`
	Scan      Scan           `mapstructure:"scan" json:"scan" yaml:"scan"`
	Check     Check          `mapstructure:"check" json:"check" yaml:"check"`
}

// Constants mirrors xsect.Constants with config keys.
type Constants struct {
	Alpha    float64 `mapstructure:"alpha" json:"alpha" yaml:"alpha"`
	HbarcSqr float64 `mapstructure:"hbarc_sqr" json:"hbarc_sqr" yaml:"hbarc_sqr"`
}

// Scan controls how kinematic scans are evaluated.
type Scan struct {
	Workers int `mapstructure:"workers" json:"workers" yaml:"workers"`
}

// Check controls the advisory spin-sum check.
type Check struct {
	Enabled   bool    `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Tolerance float64 `mapstructure:"tolerance" json:"tolerance" yaml:"tolerance"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAlpha, xsect.DefaultAlpha)
	v.SetDefault(KeyHbarcSqr, xsect.DefaultHbarcSqr)
	v.SetDefault(KeyLogLevel, logging.DefaultConfig().Level)
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyWorkers, 4)
	v.SetDefault(KeyCheckEnabled, xsect.DefaultConsistencyCheck)
	v.SetDefault(KeyCheckTolerance, xsect.DefaultCheckTolerance)
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the optional file at path into v, then decodes and validates.
// Errors: a read or decode failure (wrapped), or ErrInvalid.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting that an xsect option would panic on.
func (c *Config) Validate() error {
	if err := c.XsectConstants().Validate(); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if c.Scan.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "%s = %d, want ≥ 1", KeyWorkers, c.Scan.Workers)
	}
	if !(c.Check.Tolerance >= 0) || math.IsInf(c.Check.Tolerance, 0) {
		return errors.Wrapf(ErrInvalid, "%s = %g", KeyCheckTolerance, c.Check.Tolerance)
	}
	return nil
}

// XsectConstants converts the constants section.
func (c *Config) XsectConstants() xsect.Constants {
	return xsect.Constants{Alpha: c.Constants.Alpha, HbarcSqr: c.Constants.HbarcSqr}
}

// EngineOptions returns the xsect options for a validated Config.
func (c *Config) EngineOptions(log *zap.Logger) []xsect.Option {
	return []xsect.Option{
		xsect.WithConstants(c.XsectConstants()),
		xsect.WithLogger(log),
		xsect.WithConsistencyCheck(c.Check.Enabled),
		xsect.WithCheckTolerance(c.Check.Tolerance),
	}
}
