/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"math"
	"strconv"

	"github.com/rs/zerolog"
)

// Calculator runs fragments through the tokenizer, the converter and the
// evaluator. It holds no state between calls and may be shared by goroutines.
type Calculator struct {
	log    zerolog.Logger
	strict bool
}

type Result struct {
	Fragments []string
	Tokens    []Token
	Postfix   []Token
	Value     float64
}

func New(log zerolog.Logger, strict bool) *Calculator {
	return &Calculator{log: log, strict: strict}
}

func (c *Calculator) Strict() bool {
	return c.strict
}

func (c *Calculator) Log() zerolog.Logger {
	return c.log
}

// Evaluate computes the value of an infix expression given as fragments. The
// returned Result is populated as far as evaluation got, even on error.
func (c *Calculator) Evaluate(fragments []string) (Result, error) {
	r := Result{Fragments: fragments}

	r.Tokens = TokenizeAll(fragments)
	if c.strict {
		if err := CheckTokens(fragments, r.Tokens); err != nil {
			return r, err
		}
	}

	postfix, err := Converter{Log: c.log, Strict: c.strict}.Convert(r.Tokens)
	if err != nil {
		return r, err
	}
	r.Postfix = postfix
	c.log.Trace().Str("postfix", Join(postfix)).Msg("converted to postfix")

	r.Value, err = Evaluator{Log: c.log, Strict: c.strict}.Evaluate(postfix)
	if err != nil {
		return r, err
	}

	return r, nil
}

// EvaluateLine is Evaluate for a single whitespace separated string.
func (c *Calculator) EvaluateLine(line string) (Result, error) {
	return c.Evaluate(Fragments(line))
}

// FormatValue renders v in plain decimal notation: the shortest representation
// that round-trips, without an exponent. Infinities print as inf and -inf.
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
