// SPDX-License-Identifier: MIT

package relation

import (
	"fmt"

	"github.com/katalvlaran/intmat/matrix"
)

// Names of the entry-point cross-checks.
const (
	NameNestedEntry = "nested-entry"
	NameLegacyEntry = "legacy-entry"
)

// staleFill pre-fills nested outputs so a kernel that accumulates instead of
// assigning is caught.
const staleFill = -7

// NestedEntry checks that matrix.Multiply over nested slices, writing into a
// pre-filled C, agrees with matrix.Mul.
func NestedEntry() Relation {
	return Relation{Name: NameNestedEntry, Check: func(a, b *matrix.Dense) error {
		return nestedAgainstMul(NameNestedEntry, a, b, func(ra, rb, c [][]int, m, n, p int) error {
			return matrix.Multiply(ra, rb, c, m, n, p)
		})
	}}
}

// LegacyEntry checks that matrix.MultiplyUnchecked agrees with matrix.Mul on
// well-formed operands. A panic is reported as a failure.
func LegacyEntry() Relation {
	return Relation{Name: NameLegacyEntry, Check: func(a, b *matrix.Dense) error {
		return nestedAgainstMul(NameLegacyEntry, a, b, func(ra, rb, c [][]int, m, n, p int) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v: %w", r, ErrRelationViolated)
				}
			}()
			matrix.MultiplyUnchecked(ra, rb, c, m, n, p)

			return nil
		})
	}}
}

type nestedKernel func(a, b, c [][]int, m, n, p int) error

func nestedAgainstMul(name string, a, b *matrix.Dense, kernel nestedKernel) error {
	want, err := matrix.Mul(a, b)
	if err != nil {
		return wrap(name, err)
	}

	m, n, p := a.Rows(), a.Cols(), b.Cols()
	c := matrix.NewZerosLike(m, p)
	for i := range c {
		for j := range c[i] {
			c[i][j] = staleFill
		}
	}
	if err = kernel(a.ToRows(), b.ToRows(), c, m, n, p); err != nil {
		return wrap(name, err)
	}
	got, err := matrix.NewDenseWindow(c, m, p)
	if err != nil {
		return wrap(name, err)
	}

	return compare(name, got, want)
}
