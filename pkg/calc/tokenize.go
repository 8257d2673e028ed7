/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tokenize maps a single input fragment to exactly one Token. A fragment is
// never split, so "-10" is a negative number rather than a minus followed by
// digits.
//
// Grammar:
//
//	operator        = "+" / "-" / "*" / "/"
//	context-open    = "(" / "[" / "{"
//	context-close   = ")" / "]" / "}"
//	number          = [ "+" / "-" ] ( decimal [ exponent ] / "inf" / "infinity" / "nan" )
func Tokenize(fragment string) Token {
	switch s := strings.TrimSpace(fragment); s {
	case "+":
		return Plus
	case "-":
		return Minus
	case "*":
		return Multiply
	case "/":
		return Divide
	case "(", "[", "{":
		return OpenContext
	case ")", "]", "}":
		return CloseContext
	default:
		return tokenizeNumber(s)
	}
}

// TokenizeAll tokenizes each fragment in order. The result always has one
// token per fragment; invalid fragments produce Err.
func TokenizeAll(fragments []string) []Token {
	tokens := make([]Token, 0, len(fragments))
	for _, f := range fragments {
		tokens = append(tokens, Tokenize(f))
	}
	return tokens
}

// Fragments splits a line of input on whitespace.
func Fragments(line string) []string {
	return strings.Fields(line)
}

// CheckTokens returns a *TokenError for the first fragment which tokenized to
// Err, or nil if every fragment was recognized.
func CheckTokens(fragments []string, tokens []Token) error {
	for i, t := range tokens {
		if t.Type != TOK_ERR {
			continue
		}
		fragment := ""
		if i < len(fragments) {
			fragment = strings.TrimSpace(fragments[i])
		}
		return &TokenError{Index: i, Fragment: fragment}
	}
	return nil
}

func tokenizeNumber(s string) Token {
	if hasBasePrefix(s) || strings.ContainsRune(s, '_') {
		return Err
	}

	value, err := strconv.ParseFloat(s, 64)
	// Values too large for a float64 come back as +/-Inf along with ErrRange,
	// which is still a usable number.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Err
	}

	if _, frac := math.Modf(value); frac == 0 {
		if n, ok := narrowInt32(value); ok {
			return Integer(n)
		}
	}
	return Float(value)
}

// narrowInt32 converts an integral float64 to an int32, failing when the value
// does not fit instead of wrapping or clamping.
func narrowInt32(f float64) (int32, bool) {
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int32(f), true
}

// strconv accepts hexadecimal floats, which are not numbers in an expression.
// Its "_" digit separators are rejected separately.
func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
