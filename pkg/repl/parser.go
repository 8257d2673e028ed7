/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"

	"github.com/dburkart/calc/pkg/calc"
	"github.com/pkg/errors"
)

const (
	CommandEval    = "EVAL"
	CommandPostfix = "POSTFIX"
	CommandTokens  = "TOKENS"
	CommandHelp    = "HELP"
	CommandExit    = "EXIT"
)

var Commands = []string{CommandEval, CommandPostfix, CommandTokens, CommandHelp, CommandExit}

type Command struct {
	Name      string
	Fragments []string
}

// ParseREPLCommand parses input from the command line
//
// A line which does not start with a known command is evaluated as an
// expression. This function assumes there is no '\n'
func ParseREPLCommand(b []byte) (Command, error) {
	b = bytes.TrimSpace(b)
	cmd := []byte{}
	var data []byte

	// all commands have a space after them, if not then they are command only
	// like EXIT
	ind := bytes.IndexAny(b, " \t")
	if ind == -1 {
		cmd = b
	} else {
		cmd = b[0:ind]
		data = b[ind+1:]
	}

	name := strings.ToUpper(string(cmd))
	switch name {
	case CommandHelp, CommandExit:
		return Command{Name: name}, nil
	case CommandEval, CommandPostfix, CommandTokens:
		fragments := calc.Fragments(string(data))
		if len(fragments) == 0 {
			return Command{}, errors.Errorf("%s requires an expression", strings.ToLower(name))
		}
		return Command{Name: name, Fragments: fragments}, nil
	}

	fragments := calc.Fragments(string(b))
	if len(fragments) == 0 {
		return Command{}, errors.New("empty input")
	}
	return Command{Name: CommandEval, Fragments: fragments}, nil
}
