/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestEvaluatePostfix(t *testing.T) {
	tokens := []Token{
		Integer(2), Integer(3), Integer(4), Integer(1), Minus,
		Multiply, Integer(5), Divide, Plus,
	}

	got, err := EvaluatePostfix(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3.8 {
		t.Errorf("wanted 3.8, got %v", got)
	}
}

func TestEvaluateOperandOrder(t *testing.T) {
	tests := []struct {
		tokens []Token
		want   float64
	}{
		{[]Token{Integer(10), Integer(4), Minus}, 6},
		{[]Token{Integer(10), Integer(4), Divide}, 2.5},
		{[]Token{Float(1.5), Integer(2), Multiply}, 3},
		{[]Token{Float(0.5), Float(0.25), Plus}, 0.75},
		{[]Token{Integer(-3)}, -3},
	}

	for _, test := range tests {
		got, err := EvaluatePostfix(test.tokens)
		if err != nil {
			t.Errorf("%s: %v", Join(test.tokens), err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: wanted %v, got %v", Join(test.tokens), test.want, got)
		}
	}
}

func TestEvaluateDivideByZero(t *testing.T) {
	got, err := EvaluatePostfix([]Token{Integer(4), Integer(0), Divide})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("wanted +Inf, got %v", got)
	}

	got, err = EvaluatePostfix([]Token{Integer(0), Integer(0), Divide})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Errorf("wanted NaN, got %v", got)
	}
}

func TestEvaluateFailures(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   error
	}{
		{"empty", nil, ErrStackUnderflow},
		{"lone operator", []Token{Plus}, ErrStackUnderflow},
		{"one operand", []Token{Integer(1), Plus}, ErrStackUnderflow},
		{"extra operand", []Token{Integer(1), Integer(2)}, ErrMalformedResult},
		{"unbalanced", []Token{Integer(1), Integer(2), Integer(3), Plus}, ErrMalformedResult},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := EvaluatePostfix(test.tokens)
			if !errors.Is(err, test.want) {
				t.Errorf("wanted %v, got %v", test.want, err)
			}
		})
	}
}

func TestEvaluateSkipsContext(t *testing.T) {
	tokens := []Token{Integer(1), Integer(2), Plus, OpenContext, Err, CloseContext}

	got, err := EvaluatePostfix(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("wanted 3, got %v", got)
	}

	strict := Evaluator{Log: zerolog.Nop(), Strict: true}
	if _, err := strict.Evaluate(tokens); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wanted ErrInvalidToken, got %v", err)
	}
}
