// SPDX-License-Identifier: MIT

// Package problem loads a multiplication problem, the operands A and B with
// optional declared extents and an optional known inverse of A, from a YAML
// or JSON file.
//
//	a: [[1, 2, 3], [4, 5, 6]]
//	b: [[7, 8], [9, 10], [11, 12]]
//	m: 2   # optional, len(a) when omitted
//	n: 3   # optional, len(b) when omitted
//	p: 2   # optional, len(b[0]) when omitted
//	inverse: [[...]]
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyProblem reports a file with neither operand.
var ErrEmptyProblem = errors.New("problem: no operands")

// Problem is one multiplication request. Declared extents are pointers so
// an explicit 0 is distinguishable from an omitted key.
type Problem struct {
	A       [][]int `yaml:"a" json:"a"`
	B       [][]int `yaml:"b" json:"b"`
	M       *int    `yaml:"m,omitempty" json:"m,omitempty"`
	N       *int    `yaml:"n,omitempty" json:"n,omitempty"`
	P       *int    `yaml:"p,omitempty" json:"p,omitempty"`
	Inverse [][]int `yaml:"inverse,omitempty" json:"inverse,omitempty"`
}

// Dims returns the declared extents, inferring each omitted one from the
// operands: m = len(A), n = len(B), p = len(B[0]) (0 for an empty B).
func (p *Problem) Dims() (m, n, pp int) {
	m, n = len(p.A), len(p.B)
	if len(p.B) > 0 {
		pp = len(p.B[0])
	}
	if p.M != nil {
		m = *p.M
	}
	if p.N != nil {
		n = *p.N
	}
	if p.P != nil {
		pp = *p.P
	}

	return m, n, pp
}

// Declared reports whether any extent was given explicitly.
func (p *Problem) Declared() bool {
	return p.M != nil || p.N != nil || p.P != nil
}

// Load reads and decodes the file at path. JSON is a subset of YAML, so one
// decoder serves .json, .yaml and .yml files alike.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	prob, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("problem: %s: %w", path, err)
	}

	return prob, nil
}

// Decode reads one problem document. Unknown keys are rejected so a typo
// such as "inverse" spelled "invers" does not silently disable a check.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyProblem
		}
		return nil, err
	}
	if p.A == nil && p.B == nil {
		return nil, ErrEmptyProblem
	}

	return &p, nil
}
