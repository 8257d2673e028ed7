/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"math"
	"strconv"
	"strings"

	"github.com/dburkart/calc/pkg/calc"
	"github.com/dustin/go-humanize"
)

// Evaluation is the printable result of evaluating an expression
type Evaluation struct {
	Expression string   `json:"expression" yaml:"expression"`
	Postfix    string   `json:"postfix" yaml:"postfix"`
	Result     string   `json:"result" yaml:"result"`
	Value      *float64 `json:"value" yaml:"value"`

	grouped bool
}

// NewEvaluation builds an Evaluation from a calculator result. With grouped
// set, the plain rendering groups digits with commas.
func NewEvaluation(r calc.Result, grouped bool) Evaluation {
	e := Evaluation{
		Expression: strings.Join(r.Fragments, " "),
		Postfix:    calc.Join(r.Postfix),
		Result:     calc.FormatValue(r.Value),
		grouped:    grouped,
	}
	// Inf and NaN have no JSON representation
	if !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
		v := r.Value
		e.Value = &v
	}
	return e
}

func (e Evaluation) Headers() []string {
	return []string{"expression", "postfix", "result"}
}

func (e Evaluation) Values() [][]string {
	return [][]string{{e.Expression, e.Postfix, e.Result}}
}

func (e Evaluation) Plain() string {
	if e.grouped && e.Value != nil {
		return humanize.Commaf(*e.Value)
	}
	return e.Result
}

// TokenListing describes each token of a sequence, either the tokenized input
// or its postfix reordering.
type TokenListing struct {
	Tokens []TokenEntry `json:"tokens" yaml:"tokens"`
}

type TokenEntry struct {
	Position int    `json:"position" yaml:"position"`
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Type     string `json:"type" yaml:"type"`
	Token    string `json:"token" yaml:"token"`
}

// NewTokenListing lists tokens. Fragments, when given, must line up one to one
// with tokens.
func NewTokenListing(tokens []calc.Token, fragments []string) TokenListing {
	l := TokenListing{Tokens: make([]TokenEntry, 0, len(tokens))}
	for i, t := range tokens {
		entry := TokenEntry{
			Position: i,
			Type:     t.Type.ToString(),
			Token:    t.String(),
		}
		if i < len(fragments) {
			entry.Fragment = fragments[i]
		}
		l.Tokens = append(l.Tokens, entry)
	}
	return l
}

func (l TokenListing) Headers() []string {
	return []string{"position", "fragment", "type", "token"}
}

func (l TokenListing) Values() [][]string {
	rows := make([][]string, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		rows = append(rows, []string{strconv.Itoa(t.Position), t.Fragment, t.Type, t.Token})
	}
	return rows
}

func (l TokenListing) Plain() string {
	row := make([]string, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		row = append(row, t.Token)
	}
	return joinRow(row)
}
