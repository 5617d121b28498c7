// SPDX-License-Identifier: MIT

// Command intmat multiplies integer matrices read from problem files and
// verifies the product against the algebraic laws of multiplication.
//
//	intmat multiply -f problem.yaml [--mode strict|legacy] [--format table|yaml|json]
//	intmat verify -f problem.yaml [--scalar 2 --scalar -1]
//	intmat version
package main

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
)

const flagConfig = "config"

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}

// cli carries what every subcommand needs once flags are parsed.
type cli struct {
	out io.Writer
	cfg *config.Config
}

func newRootCommand(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:           "intmat",
		Short:         "Dense integer matrix multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String(flagConfig, "", "path of config file")
	flags.Bool(config.FlagDebug, false, "use debug log mode")
	log.AddFlags(flags)

	root.AddCommand(
		newMultiplyCommand(c),
		newVerifyCommand(c),
		newVersionCommand(c),
	)

	return root
}

// setup configures logging and resolves the configuration for cmd.
func (c *cli) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	v := viper.New()
	if err := config.BindFlags(v, flags); err != nil {
		return errors.Trace(err)
	}
	path, _ := flags.GetString(flagConfig)
	cfg, err := config.Load(v, path)
	if err != nil {
		return errors.Annotate(err, "load config")
	}
	c.cfg = cfg
	log.SetLogger(flags, cfg.Debug)
	log.Logger().Debug("configuration resolved",
		zap.String("mode", cfg.Mode),
		zap.String("format", cfg.Format),
		zap.Bool("overflow_check", cfg.OverflowCheck),
		zap.Ints("scalars", cfg.Scalars))

	return nil
}

// mustMarkRequired marks a flag the command itself defines, so a failure
// means the name is misspelled.
func mustMarkRequired(cmd *cobra.Command, name string) {
	if err := cmd.MarkFlagRequired(name); err != nil {
		panic(errors.Annotatef(err, "%s: mark flag %q required", cmd.Name(), name))
	}
}
