/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"strconv"
)

type TokenType int

const (
	TOK_ERR TokenType = iota

	TOK_INTEGER
	TOK_FLOAT

	// Binary operators
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH

	// Any of (, [ or { and their closing counterparts
	TOK_CONTEXT_OPEN
	TOK_CONTEXT_CLOSE
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_ERR:
		return "TOK_ERR"
	case TOK_INTEGER:
		return "TOK_INTEGER"
	case TOK_FLOAT:
		return "TOK_FLOAT"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_SLASH:
		return "TOK_SLASH"
	case TOK_CONTEXT_OPEN:
		return "TOK_CONTEXT_OPEN"
	case TOK_CONTEXT_CLOSE:
		return "TOK_CONTEXT_CLOSE"
	}
	return "TOK_UNKNOWN"
}

// Token is a single lexical element of an expression. Tokens are plain values;
// only the payload matching Type is ever set, so two tokens are equal exactly
// when they have the same type and value. A NaN Float is the exception and
// never equals another token, itself included.
type Token struct {
	Type  TokenType
	Int   int32
	Float float64
}

var (
	Plus         = Token{Type: TOK_PLUS}
	Minus        = Token{Type: TOK_MINUS}
	Multiply     = Token{Type: TOK_STAR}
	Divide       = Token{Type: TOK_SLASH}
	OpenContext  = Token{Type: TOK_CONTEXT_OPEN}
	CloseContext = Token{Type: TOK_CONTEXT_CLOSE}
	Err          = Token{Type: TOK_ERR}
)

func Integer(n int32) Token { return Token{Type: TOK_INTEGER, Int: n} }
func Float(f float64) Token { return Token{Type: TOK_FLOAT, Float: f} }

func (t Token) IsNumber() bool {
	return t.Type == TOK_INTEGER || t.Type == TOK_FLOAT
}

func (t Token) IsOperator() bool {
	switch t.Type {
	case TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH:
		return true
	}
	return false
}

// Value returns the numeric payload of t widened to a float64. Non-numeric
// tokens have a value of 0.
func (t Token) Value() float64 {
	switch t.Type {
	case TOK_INTEGER:
		return float64(t.Int)
	case TOK_FLOAT:
		return t.Float
	}
	return 0
}

// String renders the token the way it would be written in an expression.
func (t Token) String() string {
	switch t.Type {
	case TOK_INTEGER:
		return strconv.FormatInt(int64(t.Int), 10)
	case TOK_FLOAT:
		return FormatValue(t.Float)
	case TOK_PLUS:
		return "+"
	case TOK_MINUS:
		return "-"
	case TOK_STAR:
		return "*"
	case TOK_SLASH:
		return "/"
	case TOK_CONTEXT_OPEN:
		return "("
	case TOK_CONTEXT_CLOSE:
		return ")"
	}
	return "<err>"
}

// Join renders a token sequence separated by single spaces.
func Join(tokens []Token) string {
	b := make([]byte, 0, len(tokens)*2)
	for i, t := range tokens {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, t.String()...)
	}
	return string(b)
}
