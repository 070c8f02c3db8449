package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the per-invocation configuration shared by all sub-commands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	out io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New(), out: out}
	a.log.SetOutput(errOut)
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var cfgFile string
	root := &cobra.Command{
		Use:          "fdcomp",
		Short:        "Drainage trees and flow-path comparison for D8 rasters",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.configure(cfgFile)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	pf.String("log-level", "info", "logrus level: debug, info, warn, error")
	cobra.CheckErr(a.v.BindPFlag("log-level", pf.Lookup("log-level")))

	root.AddCommand(a.treeCmd(), a.compareCmd())

	return root
}

// configure layers the config file and FDCOMP_* environment under the flags
// and applies the log level.
func (a *app) configure(cfgFile string) error {
	a.v.SetEnvPrefix("FDCOMP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	lvl, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log.SetLevel(lvl)
	if cfgFile != "" {
		a.log.WithField("file", a.v.ConfigFileUsed()).Debug("config loaded")
	}

	return nil
}
