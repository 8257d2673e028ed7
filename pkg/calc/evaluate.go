/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Evaluator computes the value of a postfix token sequence on a float64 stack.
//
// Grouping and Err tokens have no meaning in postfix order. They are logged
// and skipped, unless Strict is set, in which case evaluation fails.
type Evaluator struct {
	Log    zerolog.Logger
	Strict bool
}

// EvaluatePostfix evaluates tokens with a permissive, silent Evaluator.
func EvaluatePostfix(tokens []Token) (float64, error) {
	return Evaluator{Log: zerolog.Nop()}.Evaluate(tokens)
}

func (e Evaluator) Evaluate(tokens []Token) (float64, error) {
	stack := make([]float64, 0, len(tokens))

	for i, tok := range tokens {
		switch tok.Type {
		case TOK_INTEGER, TOK_FLOAT:
			stack = append(stack, tok.Value())

		case TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH:
			if len(stack) < 2 {
				return 0, errors.Wrapf(ErrStackUnderflow, "operator %s at position %d", tok, i)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = append(stack[:len(stack)-2], apply(tok, a, b))

		default:
			if e.Strict {
				return 0, errors.Wrapf(ErrInvalidToken, "%s at position %d in postfix", tok.Type.ToString(), i)
			}
			e.Log.Debug().
				Str("token", tok.Type.ToString()).
				Int("position", i).
				Msg("token should not appear in postfix, skipping")
		}
	}

	switch len(stack) {
	case 0:
		return 0, errors.Wrap(ErrStackUnderflow, "no result")
	case 1:
		return stack[0], nil
	default:
		return 0, errors.Wrapf(ErrMalformedResult, "%d values left on stack", len(stack))
	}
}

// apply computes a op b. Division by zero follows IEEE 754 and produces an
// infinity or NaN.
func apply(op Token, a, b float64) float64 {
	switch op.Type {
	case TOK_PLUS:
		return a + b
	case TOK_MINUS:
		return a - b
	case TOK_STAR:
		return a * b
	case TOK_SLASH:
		return a / b
	}
	panic("Unexpected operator passed to apply: " + op.Type.ToString())
}
