package main

import (
	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/internal/config"
	"github.com/rjones30/diracxx/internal/logging"
	"github.com/rjones30/diracxx/xsect"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand once the root has loaded
// the configuration.
type app struct {
	v       *viper.Viper
	cfgFile string
	format  string

	cfg    *config.Config
	log    *zap.Logger
	engine *xsect.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}
	root := &cobra.Command{
		Use:   "qedxs",
		Short: "Leading-order QED cross sections",
		Long: `qedxs evaluates Compton scattering, pair production and
bremsstrahlung cross sections from explicit helicity amplitudes and prints
them as a table, JSON or YAML.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&a.format, "format", formatTable, "output format: table, json or yaml")
	flags.String("log-level", logging.DefaultConfig().Level, "log level")
	flags.Int("workers", 4, "kinematic points evaluated in parallel")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))

	root.AddCommand(
		newComptonCmd(a),
		newPairCmd(a),
		newBremsCmd(a),
		newConstantsCmd(a),
	)
	return root
}

// init loads the configuration and builds the logger and the engine.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if !validFormat(a.format) {
		return errors.Newf("unknown format %q", a.format)
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log.Named(cmd.Name())
	a.engine = xsect.New(cfg.EngineOptions(a.log)...)
	return nil
}
