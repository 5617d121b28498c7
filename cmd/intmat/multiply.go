// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
	"github.com/katalvlaran/intmat/internal/problem"
	"github.com/katalvlaran/intmat/matrix"
)

const flagFile = "file"

func newMultiplyCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply A by B from a problem file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(flagFile)
			prob, err := problem.Load(path)
			if err != nil {
				return errors.Annotatef(err, "load problem %s", path)
			}
			res, err := multiply(prob, c.cfg)
			if err != nil {
				return errors.Trace(err)
			}
			return errors.Trace(writeProduct(c.out, c.cfg.Format, res))
		},
	}
	flags := cmd.Flags()
	flags.StringP(flagFile, "f", "", "problem file (YAML or JSON)")
	flags.String(config.FlagMode, config.ModeStrict, "strict validates extents; legacy trusts them")
	flags.String(config.FlagFormat, config.FormatTable, "output format: table, yaml or json")
	flags.Bool(config.FlagOverflowCheck, false, "fail on integer overflow instead of wrapping")
	mustMarkRequired(cmd, flagFile)

	return cmd
}

// product is the rendered result of a multiply run.
type product struct {
	M int     `json:"m" yaml:"m"`
	N int     `json:"n" yaml:"n"`
	P int     `json:"p" yaml:"p"`
	C [][]int `json:"c" yaml:"c"`
}

// multiply allocates C and runs the entry point selected by cfg.Mode.
func multiply(prob *problem.Problem, cfg *config.Config) (*product, error) {
	m, n, p := prob.Dims()
	c := matrix.NewZerosLike(m, p)
	start := time.Now()

	switch cfg.Mode {
	case config.ModeLegacy:
		if cfg.OverflowCheck {
			log.Logger().Warn("overflow check is ignored in legacy mode")
		}
		if err := multiplyLegacy(prob.A, prob.B, c, m, n, p); err != nil {
			return nil, errors.Trace(err)
		}
	default:
		var opts []matrix.Option
		if cfg.OverflowCheck {
			opts = append(opts, matrix.WithOverflowCheck())
		}
		if err := matrix.Multiply(prob.A, prob.B, c, m, n, p, opts...); err != nil {
			return nil, errors.Trace(err)
		}
	}

	log.Logger().Info("product computed",
		zap.String("mode", cfg.Mode),
		zap.Bool("declared", prob.Declared()),
		zap.Int("m", m), zap.Int("n", n), zap.Int("p", p),
		zap.Duration("elapsed", time.Since(start)))

	return &product{M: m, N: n, P: p, C: c}, nil
}

// multiplyLegacy runs the unchecked routine and turns its runtime panic on
// bad extents into an error.
func multiplyLegacy(a, b, c [][]int, m, n, p int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("legacy multiply (m=%d n=%d p=%d): %v", m, n, p, r)
		}
	}()
	matrix.MultiplyUnchecked(a, b, c, m, n, p)

	return nil
}
