package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecc/internal/config"
)

var log = logging.Logger("ecc")

// app carries the state shared by all subcommands.
type app struct {
	v    *viper.Viper
	conf *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "ecc",
		Short:         "Prime field and elliptic curve arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML file with curve presets")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("curve", "book223", "curve preset used by point commands")
	if err := bindFlags(a.v, flags); err != nil {
		// Only fails on a programming error in the flag names above.
		panic(err)
	}

	root.AddCommand(newFieldCmd(), newPointCmd(a), newCurvesCmd(a))
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"log_level": "log-level",
		"curve":     "curve",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

func (a *app) init(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	conf, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	a.conf = conf

	lvl, err := logging.LevelFromString(conf.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log level %q", conf.LogLevel)
	}
	logging.SetAllLoggers(lvl)
	log.Debugf("using curve preset %s", conf.Curve)
	return nil
}

func newCurvesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the available curve presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.conf.Names() {
				p, err := a.conf.Preset(name)
				if err != nil {
					return err
				}
				over := "Q"
				if p.Modular() {
					over = "F_" + p.Modulus
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\ty^2 = x^3 + %s*x + %s over %s\n", name, p.A, p.B, over)
			}
			return nil
		},
	}
}
