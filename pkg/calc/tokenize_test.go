/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  Token
	}{
		{"+", Plus},
		{"-", Minus},
		{"*", Multiply},
		{"/", Divide},
		{"1", Integer(1)},
		{"1.05", Float(1.05)},
		{"-10", Integer(-10)},
		{"-10.3", Float(-10.3)},
		{"6.0", Integer(6)},
		{"1e3", Integer(1000)},
		{"  42\t", Integer(42)},
		{" + ", Plus},
		{"(", OpenContext},
		{"[", OpenContext},
		{"{", OpenContext},
		{")", CloseContext},
		{"]", CloseContext},
		{"}", CloseContext},
		{"2147483647", Integer(math.MaxInt32)},
		{"-2147483648", Integer(math.MinInt32)},
		{"2147483648", Float(2147483648)},
		{"3000000000", Float(3e9)},
		{"failure", Err},
		{"", Err},
		{"1_000", Err},
		{"1_000.5", Err},
		{"-2_5", Err},
		{"1e1_0", Err},
		{"0x10", Err},
		{"-0x1p-2", Err},
		{"1 + 1", Err},
		{"++", Err},
	}

	for _, test := range tests {
		if got := Tokenize(test.input); got != test.want {
			t.Errorf("Tokenize(%q): wanted %s(%s), got %s(%s)", test.input,
				test.want.Type.ToString(), test.want, got.Type.ToString(), got)
		}
	}
}

func TestTokenizeNonFinite(t *testing.T) {
	tok := Tokenize("1e400")
	if tok.Type != TOK_FLOAT || !math.IsInf(tok.Float, 1) {
		t.Errorf("wanted 1e400 to be a +Inf TOK_FLOAT, got %s(%v)", tok.Type.ToString(), tok.Float)
	}

	tok = Tokenize("-inf")
	if tok.Type != TOK_FLOAT || !math.IsInf(tok.Float, -1) {
		t.Errorf("wanted -inf to be a -Inf TOK_FLOAT, got %s(%v)", tok.Type.ToString(), tok.Float)
	}

	tok = Tokenize("NaN")
	if tok.Type != TOK_FLOAT || !math.IsNaN(tok.Float) {
		t.Errorf("wanted NaN to be a NaN TOK_FLOAT, got %s(%v)", tok.Type.ToString(), tok.Float)
	}
}

// NaN never compares equal to itself, so "nan" is checked by type only
func TestTokenizeIdempotent(t *testing.T) {
	for _, input := range []string{"1", "1.05", "-10", "inf", "(", "}", "*", "bogus"} {
		if a, b := Tokenize(input), Tokenize(input); a != b {
			t.Errorf("Tokenize(%q) not stable: %s then %s", input, a, b)
		}
	}

	a, b := Tokenize("nan"), Tokenize("nan")
	if a.Type != b.Type || a == b {
		t.Errorf("wanted two NaN TOK_FLOATs that compare unequal, got %s and %s", a, b)
	}
}

func TestTokenizeAll(t *testing.T) {
	got := TokenizeAll([]string{"1", "+", "1"})
	want := []Token{Integer(1), Plus, Integer(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v, got %v", want, got)
	}

	got = TokenizeAll([]string{"failure", "1", "+", "1"})
	want = []Token{Err, Integer(1), Plus, Integer(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v, got %v", want, got)
	}

	if got := TokenizeAll(nil); len(got) != 0 {
		t.Errorf("wanted no tokens, got %v", got)
	}
}

func TestFragments(t *testing.T) {
	got := Fragments("  2 +\t3 *\n( 4 - 1 )  ")
	want := []string{"2", "+", "3", "*", "(", "4", "-", "1", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestCheckTokens(t *testing.T) {
	fragments := []string{"1", "+", " two "}
	err := CheckTokens(fragments, TokenizeAll(fragments))

	var tokErr *TokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("wanted a *TokenError, got %v", err)
	}
	if tokErr.Index != 2 || tokErr.Fragment != "two" {
		t.Errorf("wanted invalid token 'two' at 2, got %q at %d", tokErr.Fragment, tokErr.Index)
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Error("TokenError should unwrap to ErrInvalidToken")
	}

	fragments = []string{"1", "+", "2"}
	if err := CheckTokens(fragments, TokenizeAll(fragments)); err != nil {
		t.Errorf("wanted no error, got %v", err)
	}
}

func TestTokenString(t *testing.T) {
	tokens := []Token{Integer(2), Float(1.5), Float(-0.25), Plus, Minus, Multiply, Divide, OpenContext, CloseContext, Err}
	want := "2 1.5 -0.25 + - * / ( ) <err>"
	if got := Join(tokens); got != want {
		t.Errorf("wanted '%s', got '%s'", want, got)
	}
}
