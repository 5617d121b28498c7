// SPDX-License-Identifier: MIT

// Package relation checks a product kernel against the algebraic laws that
// pin matrix multiplication down without an oracle: scalar pre-multiplication,
// the transpose law, identities, annihilation, the negation pair and a known
// inverse.
//
// A Relation is a named check over an operand pair (A, B). Run applies a list
// of relations and collects one Result per relation; nothing stops at the
// first failure, so a Report always covers the whole battery.
//
// Example:
//
//	a := matrix.MustDense([][]int{{1, 2, 3}, {4, 5, 6}})
//	b := matrix.MustDense([][]int{{7, 8}, {9, 10}, {11, 12}})
//	rep := relation.Run(a, b, relation.Defaults(2, -1)...)
//	if !rep.Passed() {
//		for _, r := range rep.Failed() {
//			fmt.Println(r.Name, r.Err)
//		}
//	}
package relation
