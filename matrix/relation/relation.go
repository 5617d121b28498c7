// SPDX-License-Identifier: MIT

package relation

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/intmat/matrix"
)

// ErrRelationViolated reports that the two sides of a law disagree.
var ErrRelationViolated = errors.New("relation: violated")

// ErrNotApplicable reports that the operands cannot take part in a law,
// e.g. a known inverse supplied for a non-square A.
var ErrNotApplicable = errors.New("relation: not applicable")

// Relation names used by the built-ins.
const (
	NameScalarPremultiply = "scalar-premultiply"
	NameTranspose         = "transpose"
	NameRightIdentity     = "right-identity"
	NameLeftIdentity      = "left-identity"
	NameZeroAnnihilation  = "zero-annihilation"
	NameNegationPair      = "negation-pair"
	NameKnownInverse      = "known-inverse"
)

// Relation is a named law over an operand pair.
// Check returns nil when the law holds.
type Relation struct {
	Name  string
	Check func(a, b *matrix.Dense) error
}

// Result is the outcome of one Relation.
type Result struct {
	Name string
	Err  error
}

// OK reports whether the relation held.
func (r Result) OK() bool { return r.Err == nil }

// Report is the outcome of Run, one Result per relation in input order.
type Report struct {
	Results []Result
}

// Passed reports whether every relation held.
func (r Report) Passed() bool {
	return lo.EveryBy(r.Results, Result.OK)
}

// Failed returns the results whose relation did not hold.
func (r Report) Failed() []Result {
	return lo.Reject(r.Results, func(res Result, _ int) bool { return res.OK() })
}

// Names returns the relation names in run order.
func (r Report) Names() []string {
	return lo.Map(r.Results, func(res Result, _ int) string { return res.Name })
}

// Run applies every relation to (a, b). A nil Check counts as a failure, and
// a nil operand fails every relation with matrix.ErrNilMatrix.
func Run(a, b *matrix.Dense, rels ...Relation) Report {
	nilErr := matrix.ValidateNotNil(a)
	if nilErr == nil {
		nilErr = matrix.ValidateNotNil(b)
	}

	return Report{Results: lo.Map(rels, func(rel Relation, _ int) Result {
		if nilErr != nil {
			return Result{Name: rel.Name, Err: wrap(rel.Name, nilErr)}
		}
		if rel.Check == nil {
			return Result{Name: rel.Name, Err: fmt.Errorf("%s: nil check: %w", rel.Name, ErrNotApplicable)}
		}
		return Result{Name: rel.Name, Err: rel.Check(a, b)}
	})}
}

// Defaults returns the standard battery: one scalar law per k in scalars
// (2 and -1 when none are given), then transpose, both identities,
// annihilation and the negation pair.
func Defaults(scalars ...int) []Relation {
	if len(scalars) == 0 {
		scalars = []int{2, -1}
	}
	rels := lo.Map(scalars, func(k int, _ int) Relation { return ScalarPremultiply(k) })

	return append(rels,
		TransposeLaw(),
		RightIdentity(),
		LeftIdentity(),
		ZeroAnnihilation(),
		NegationPair(),
	)
}

// compare returns ErrRelationViolated naming the first differing cell.
func compare(name string, got, want matrix.Matrix) error {
	i, j, differ := matrix.FirstDiff(got, want)
	if !differ {
		return nil
	}
	if i < 0 {
		return fmt.Errorf("%s: shape %dx%d, want %dx%d: %w",
			name, got.Rows(), got.Cols(), want.Rows(), want.Cols(), ErrRelationViolated)
	}
	gv, _ := got.At(i, j)
	wv, _ := want.At(i, j)

	return fmt.Errorf("%s: cell (%d,%d) = %d, want %d: %w", name, i, j, gv, wv, ErrRelationViolated)
}

// wrap tags an error coming from the matrix package with the relation name.
func wrap(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
