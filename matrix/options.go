// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Integer policy: the default is native two's-complement wraparound, the
//     same result a plain `sum += a*b` loop yields. WithOverflowCheck turns
//     any product or partial sum that leaves the int range into ErrOverflow.
//   - Options never change loop order, so results are bit-identical across
//     policies whenever no overflow occurs.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultOverflowCheck toggles overflow detection in Mul/MulInto/Multiply.
const DefaultOverflowCheck = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	overflowCheck bool // DefaultOverflowCheck
}

// OverflowCheck reports whether overflow detection is enabled.
func (o Options) OverflowCheck() bool { return o.overflowCheck }

// WithOverflowCheck makes the kernels return ErrOverflow instead of wrapping.
//
// Behavior highlights:
//   - Checked per multiply-add; the first offending cell is reported.
//   - The destination may be partially written when the error is returned.
//
// Complexity:
//   - Time O(1), Space O(1); adds a constant factor to the inner loop.
func WithOverflowCheck() Option {
	return func(o *Options) { o.overflowCheck = true }
}

// WithWraparound restores the default wraparound policy.
func WithWraparound() Option {
	return func(o *Options) { o.overflowCheck = false }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Stable for a given sequence of opts; last-writer-wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernel layers.
func gatherOptions(user ...Option) Options {
	o := Options{
		overflowCheck: DefaultOverflowCheck,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
