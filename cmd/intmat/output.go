// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/matrix/relation"
)

// writeProduct renders C in the requested format.
func writeProduct(w io.Writer, format string, res *product) error {
	switch format {
	case config.FormatYAML, config.FormatJSON:
		return encode(w, format, res)
	}

	table := tablewriter.NewWriter(w)
	header := append([]string{""}, lo.Times(res.P, strconv.Itoa)...)
	table.Header(lo.ToAnySlice(header)...)
	rows := lo.Map(res.C, func(row []int, i int) []string {
		return append([]string{strconv.Itoa(i)}, lo.Map(row, func(v int, _ int) string { return strconv.Itoa(v) })...)
	})
	if err := table.Bulk(rows); err != nil {
		return errors.Trace(err)
	}

	return errors.Trace(table.Render())
}

// check is one rendered relation result.
type check struct {
	Name   string `json:"name" yaml:"name"`
	Passed bool   `json:"passed" yaml:"passed"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// writeReport renders a relation report in the requested format.
func writeReport(w io.Writer, format string, rep relation.Report) error {
	checks := lo.Map(rep.Results, func(r relation.Result, _ int) check {
		c := check{Name: r.Name, Passed: r.OK()}
		if r.Err != nil {
			c.Error = r.Err.Error()
		}
		return c
	})

	switch format {
	case config.FormatYAML, config.FormatJSON:
		return encode(w, format, checks)
	}

	table := tablewriter.NewWriter(w)
	table.Header("relation", "result", "detail")
	rows := lo.Map(checks, func(c check, _ int) []string {
		return []string{c.Name, lo.Ternary(c.Passed, "pass", "FAIL"), c.Error}
	})
	if err := table.Bulk(rows); err != nil {
		return errors.Trace(err)
	}

	return errors.Trace(table.Render())
}

func encode(w io.Writer, format string, v any) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(v))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Trace(err)
	}

	return errors.Trace(enc.Close())
}
