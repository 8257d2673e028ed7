/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dburkart/calc/pkg/calc"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrorPrinter writes errors to a stream, in red when the stream is a
// terminal.
type ErrorPrinter struct {
	w     io.Writer
	color *color.Color
}

func NewErrorPrinter(f *os.File) ErrorPrinter {
	return newErrorPrinter(f, isTerminal(f))
}

func newErrorPrinter(w io.Writer, colored bool) ErrorPrinter {
	c := color.New(color.FgRed, color.Bold)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return ErrorPrinter{w: w, color: c}
}

// Print writes err. Invalid tokens are shown in the context of the fragments
// they came from.
func (p ErrorPrinter) Print(err error, fragments []string) {
	var tokErr *calc.TokenError
	if errors.As(err, &tokErr) && len(fragments) > 0 {
		p.color.Fprint(p.w, tokErr.FormatError(fragments))
		return
	}

	p.color.Fprint(p.w, "error:")
	fmt.Fprintf(p.w, " %s\n", err)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
