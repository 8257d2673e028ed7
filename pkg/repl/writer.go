/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
)

// Formats accepted by NewOutputWriter
var Formats = []string{"plain", "text", "csv", "json", "yaml"}

type Printable interface {
	Headers() []string
	Values() [][]string
	Plain() string
}

type OutputWriter interface {
	Write(v Printable) error
}

type PlainWriter struct {
	w io.Writer
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

type YAMLWriter struct {
	w io.Writer
}

func ValidFormat(t string) bool {
	for _, f := range Formats {
		if f == t {
			return true
		}
	}
	return false
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "text":
		return TextWriter{
			w,
		}
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	case "yaml":
		return YAMLWriter{
			w,
		}
	}
	return PlainWriter{
		w,
	}
}

func (w PlainWriter) Write(v Printable) error {
	_, err := fmt.Fprintln(w.w, v.Plain())
	return err
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return err
	}
	return wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) error {
	headers := make([]any, 0, len(v.Headers()))
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(headers...)
	if err := table.Bulk(v.Values()); err != nil {
		return err
	}
	return table.Render()
}

func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	return enc.Encode(v)
}

func (w YAMLWriter) Write(v Printable) error {
	enc := yaml.NewEncoder(w.w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func joinRow(row []string) string {
	return strings.Join(row, " ")
}
