/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrStackUnderflow is returned when an operator, or the final result,
	// needs more values than the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrMalformedResult is returned when more than one value is left on the
	// stack after evaluation.
	ErrMalformedResult = errors.New("malformed result")

	ErrMalformedGrouping = errors.New("malformed grouping")
	ErrInvalidToken      = errors.New("invalid token")
)

// TokenError reports an input fragment which is not an operator, a grouping
// symbol, or a number.
type TokenError struct {
	Index    int
	Fragment string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d", e.Fragment, e.Index)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// FormatError renders the expression with the offending fragment underlined.
func (e *TokenError) FormatError(fragments []string) string {
	start := 0
	for i := 0; i < e.Index && i < len(fragments); i++ {
		start += utf8.RuneCountInString(strings.TrimSpace(fragments[i])) + 1
	}
	repeat := utf8.RuneCountInString(e.Fragment) - 1
	if repeat < 0 {
		repeat = 0
	}

	trimmed := make([]string, 0, len(fragments))
	for _, f := range fragments {
		trimmed = append(trimmed, strings.TrimSpace(f))
	}

	errorString := "Invalid token found in expression:\n"
	errorString += strings.Join(trimmed, " ")
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", e.Error())
	return errorString
}
