/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dburkart/calc/pkg/calc"
	"github.com/dburkart/calc/pkg/repl"
	"github.com/rs/zerolog"
)

func TestExecute(t *testing.T) {
	c := calc.New(zerolog.Nop(), false)

	tests := []struct {
		line string
		want string
	}{
		{"( 1 + 2 ) * 3", "9\n"},
		{"eval 10 / 4", "2.5\n"},
		{"postfix 2 + 3 * ( 4 - 1 ) / 5", "2 3 4 1 - * 5 / +\n"},
		{"postfix ( 1 + 2", "1 2 + (\n"},
		{"tokens [ 1 ] + junk", "( 1 ) + <err>\n"},
	}

	for _, test := range tests {
		cmd, err := repl.ParseREPLCommand([]byte(test.line))
		if err != nil {
			t.Errorf("'%s': %v", test.line, err)
			continue
		}

		var buf bytes.Buffer
		if err := execute(repl.NewOutputWriter(&buf, "plain"), c, cmd); err != nil {
			t.Errorf("'%s': %v", test.line, err)
			continue
		}
		if buf.String() != test.want {
			t.Errorf("'%s': wanted %q, got %q", test.line, test.want, buf.String())
		}
	}
}

func TestExecuteStrict(t *testing.T) {
	c := calc.New(zerolog.Nop(), true)

	tests := []struct {
		line string
		want error
	}{
		{"postfix ( 1 + 2", calc.ErrMalformedGrouping},
		{"postfix 1 + x", calc.ErrInvalidToken},
		{"1 + x", calc.ErrInvalidToken},
		{"1 +", calc.ErrStackUnderflow},
	}

	for _, test := range tests {
		cmd, err := repl.ParseREPLCommand([]byte(test.line))
		if err != nil {
			t.Errorf("'%s': %v", test.line, err)
			continue
		}

		var buf bytes.Buffer
		err = execute(repl.NewOutputWriter(&buf, "plain"), c, cmd)
		if !errors.Is(err, test.want) {
			t.Errorf("'%s': wanted %v, got %v", test.line, test.want, err)
		}
	}
}

func TestExecutePostfixLogs(t *testing.T) {
	var logs bytes.Buffer
	c := calc.New(zerolog.New(&logs).Level(zerolog.DebugLevel), false)

	cmd, err := repl.ParseREPLCommand([]byte("postfix junk + 1 )"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := execute(repl.NewOutputWriter(&buf, "plain"), c, cmd); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"invalid token discarded", "unmatched close context"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("wanted %q in the log, got %q", msg, logs.String())
		}
	}
}
