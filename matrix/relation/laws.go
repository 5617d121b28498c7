// SPDX-License-Identifier: MIT

package relation

import (
	"fmt"

	"github.com/katalvlaran/intmat/matrix"
)

// ScalarPremultiply checks (kA)B = k(AB).
func ScalarPremultiply(k int) Relation {
	name := fmt.Sprintf("%s(%d)", NameScalarPremultiply, k)

	return Relation{Name: name, Check: func(a, b *matrix.Dense) error {
		ka, err := matrix.Scale(a, k)
		if err != nil {
			return wrap(name, err)
		}
		left, err := matrix.Mul(ka, b)
		if err != nil {
			return wrap(name, err)
		}
		ab, err := matrix.Mul(a, b)
		if err != nil {
			return wrap(name, err)
		}
		right, err := matrix.Scale(ab, k)
		if err != nil {
			return wrap(name, err)
		}

		return compare(name, left, right)
	}}
}

// TransposeLaw checks BᵗAᵗ = (AB)ᵗ.
func TransposeLaw() Relation {
	return Relation{Name: NameTranspose, Check: func(a, b *matrix.Dense) error {
		at, err := matrix.Transpose(a)
		if err != nil {
			return wrap(NameTranspose, err)
		}
		bt, err := matrix.Transpose(b)
		if err != nil {
			return wrap(NameTranspose, err)
		}
		left, err := matrix.Mul(bt, at)
		if err != nil {
			return wrap(NameTranspose, err)
		}
		ab, err := matrix.Mul(a, b)
		if err != nil {
			return wrap(NameTranspose, err)
		}
		right, err := matrix.Transpose(ab)
		if err != nil {
			return wrap(NameTranspose, err)
		}

		return compare(NameTranspose, left, right)
	}}
}

// RightIdentity checks A·I = A with I sized to A's columns. B is unused.
func RightIdentity() Relation {
	return Relation{Name: NameRightIdentity, Check: func(a, _ *matrix.Dense) error {
		id, err := matrix.NewIdentity(a.Cols())
		if err != nil {
			return wrap(NameRightIdentity, err)
		}
		got, err := matrix.Mul(a, id)
		if err != nil {
			return wrap(NameRightIdentity, err)
		}

		return compare(NameRightIdentity, got, a)
	}}
}

// LeftIdentity checks I·A = A with I sized to A's rows. B is unused.
func LeftIdentity() Relation {
	return Relation{Name: NameLeftIdentity, Check: func(a, _ *matrix.Dense) error {
		id, err := matrix.NewIdentity(a.Rows())
		if err != nil {
			return wrap(NameLeftIdentity, err)
		}
		got, err := matrix.Mul(id, a)
		if err != nil {
			return wrap(NameLeftIdentity, err)
		}

		return compare(NameLeftIdentity, got, a)
	}}
}

// ZeroAnnihilation checks A·0 = 0 with 0 shaped like B.
func ZeroAnnihilation() Relation {
	return Relation{Name: NameZeroAnnihilation, Check: func(a, b *matrix.Dense) error {
		zero, err := matrix.NewZeros(b.Rows(), b.Cols())
		if err != nil {
			return wrap(NameZeroAnnihilation, err)
		}
		got, err := matrix.Mul(a, zero)
		if err != nil {
			return wrap(NameZeroAnnihilation, err)
		}
		want, err := matrix.NewZeros(a.Rows(), b.Cols())
		if err != nil {
			return wrap(NameZeroAnnihilation, err)
		}

		return compare(NameZeroAnnihilation, got, want)
	}}
}

// NegationPair checks (−A)(−B) = AB.
func NegationPair() Relation {
	return Relation{Name: NameNegationPair, Check: func(a, b *matrix.Dense) error {
		na, err := matrix.Negate(a)
		if err != nil {
			return wrap(NameNegationPair, err)
		}
		nb, err := matrix.Negate(b)
		if err != nil {
			return wrap(NameNegationPair, err)
		}
		left, err := matrix.Mul(na, nb)
		if err != nil {
			return wrap(NameNegationPair, err)
		}
		right, err := matrix.Mul(a, b)
		if err != nil {
			return wrap(NameNegationPair, err)
		}

		return compare(NameNegationPair, left, right)
	}}
}

// KnownInverse checks A·inv = I and inv·A = I. A must be square and inv
// must match its shape, else ErrNotApplicable. B is unused.
func KnownInverse(inv *matrix.Dense) Relation {
	return Relation{Name: NameKnownInverse, Check: func(a, _ *matrix.Dense) error {
		if inv == nil {
			return wrap(NameKnownInverse, ErrNotApplicable)
		}
		if a.Rows() != a.Cols() || inv.Rows() != a.Rows() || inv.Cols() != a.Cols() {
			return fmt.Errorf("%s: A is %dx%d, inverse is %dx%d: %w",
				NameKnownInverse, a.Rows(), a.Cols(), inv.Rows(), inv.Cols(), ErrNotApplicable)
		}
		id, err := matrix.NewIdentity(a.Rows())
		if err != nil {
			return wrap(NameKnownInverse, err)
		}
		right, err := matrix.Mul(a, inv)
		if err != nil {
			return wrap(NameKnownInverse, err)
		}
		if err = compare(NameKnownInverse, right, id); err != nil {
			return err
		}
		left, err := matrix.Mul(inv, a)
		if err != nil {
			return wrap(NameKnownInverse, err)
		}

		return compare(NameKnownInverse, left, id)
	}}
}
