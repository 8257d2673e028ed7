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

// Precedence returns the binding strength of an operator token. Higher binds
// tighter; non-operators have a precedence of 0.
func Precedence(t Token) int {
	switch t.Type {
	case TOK_PLUS, TOK_MINUS:
		return 1
	case TOK_STAR, TOK_SLASH:
		return 2
	}
	return 0
}

// Converter reorders infix tokens into postfix order using the shunting-yard
// algorithm.
//
// By default the converter is permissive: Err tokens are dropped, a close
// without a matching open is ignored, and an open which is never closed is
// flushed to the output. Each of these is logged at debug level. When Strict is
// set they are returned as errors instead.
type Converter struct {
	Log    zerolog.Logger
	Strict bool
}

// ToPostfix converts tokens with a permissive, silent Converter.
func ToPostfix(tokens []Token) []Token {
	out, _ := Converter{Log: zerolog.Nop()}.Convert(tokens)
	return out
}

func (c Converter) Convert(tokens []Token) ([]Token, error) {
	var stack []Token
	output := make([]Token, 0, len(tokens))

	for i, tok := range tokens {
		switch tok.Type {
		case TOK_INTEGER, TOK_FLOAT:
			output = append(output, tok)

		case TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH:
			// Equal precedence pops first, which makes operators left-associative
			for len(stack) > 0 && Precedence(stack[len(stack)-1]) >= Precedence(tok) {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case TOK_CONTEXT_OPEN:
			stack = append(stack, tok)

		case TOK_CONTEXT_CLOSE:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == TOK_CONTEXT_OPEN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				if c.Strict {
					return nil, errors.Wrapf(ErrMalformedGrouping, "unmatched close at position %d", i)
				}
				c.Log.Debug().Int("position", i).Msg("unmatched close context")
			}

		default:
			if c.Strict {
				return nil, errors.Wrapf(ErrInvalidToken, "position %d", i)
			}
			c.Log.Debug().Int("position", i).Msg("invalid token discarded")
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == TOK_CONTEXT_OPEN {
			if c.Strict {
				return nil, errors.Wrap(ErrMalformedGrouping, "unclosed context")
			}
			c.Log.Debug().Msg("unclosed context flushed to output")
		}
		output = append(output, top)
	}

	return output, nil
}
