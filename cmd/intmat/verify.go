// SPDX-License-Identifier: MIT

package main

import (
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
	"github.com/katalvlaran/intmat/internal/problem"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/matrix/relation"
)

func newVerifyCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the product of a problem file against the multiplication laws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(flagFile)
			prob, err := problem.Load(path)
			if err != nil {
				return errors.Annotatef(err, "load problem %s", path)
			}
			rep, err := verify(prob, c.cfg)
			if err != nil {
				return errors.Trace(err)
			}
			if err = writeReport(c.out, c.cfg.Format, rep); err != nil {
				return errors.Trace(err)
			}
			if failed := rep.Failed(); len(failed) > 0 {
				return errors.Errorf("%d of %d relations failed: %v",
					len(failed), len(rep.Results), lo.Map(failed, func(r relation.Result, _ int) string { return r.Name }))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringP(flagFile, "f", "", "problem file (YAML or JSON)")
	flags.String(config.FlagFormat, config.FormatTable, "output format: table, yaml or json")
	flags.IntSlice(config.FlagScalar, []int{2, -1}, "scalars for the pre-multiplication law (repeatable)")
	mustMarkRequired(cmd, flagFile)

	return cmd
}

// verify runs the standard battery on the leading m×n and n×p submatrices
// of the problem, plus the nested entry point cross-check and, when the file
// provides one, the known inverse.
func verify(prob *problem.Problem, cfg *config.Config) (relation.Report, error) {
	m, n, p := prob.Dims()
	if err := matrix.ValidateDims(m, n, p); err != nil {
		return relation.Report{}, errors.Trace(err)
	}
	if err := matrix.ValidateContainer(matrix.OperandA, prob.A, m, n, false); err != nil {
		return relation.Report{}, errors.Trace(err)
	}
	if err := matrix.ValidateContainer(matrix.OperandB, prob.B, n, p, false); err != nil {
		return relation.Report{}, errors.Trace(err)
	}

	a, err := matrix.NewDenseWindow(prob.A, m, n)
	if err != nil {
		return relation.Report{}, errors.Trace(err)
	}
	b, err := matrix.NewDenseWindow(prob.B, n, p)
	if err != nil {
		return relation.Report{}, errors.Trace(err)
	}

	rels := append(relation.Defaults(cfg.Scalars...), relation.NestedEntry(), relation.LegacyEntry())
	if prob.Inverse != nil {
		inv, err := matrix.NewDenseFrom(prob.Inverse)
		if err != nil {
			return relation.Report{}, errors.Annotate(err, "inverse")
		}
		rels = append(rels, relation.KnownInverse(inv))
	}

	rep := relation.Run(a, b, rels...)
	log.Logger().Info("relations checked",
		zap.Bool("declared", prob.Declared()),
		zap.Int("total", len(rep.Results)),
		zap.Int("failed", len(rep.Failed())))

	return rep, nil
}
