/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/calc/pkg/calc"
	"github.com/dburkart/calc/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt for evaluating expressions",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("repl.output")
		if !repl.ValidFormat(output) {
			log.Fatal().Str("output", output).Msg("unsupported output format")
		}

		c := calc.New(log, viper.GetBool("calc.strict"))
		readlinePrompt(log, c, output)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "plain", "Output format of results [plain, text, csv, json, yaml]")

	// Bind flags to viper
	viper.BindPFlag("repl.output", Command.Flags().Lookup("output"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(log zerolog.Logger, c *calc.Calculator, output string) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("eval"),
		readline.PcItem("postfix"),
		readline.PcItem("tokens"),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start prompt")
	}
	defer rl.Close()

	writer := repl.NewOutputWriter(os.Stdout, output)
	errs := repl.NewErrorPrinter(os.Stderr)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		cmd, err := repl.ParseREPLCommand([]byte(line))
		if err != nil {
			errs.Print(err, nil)
			continue
		}

		switch cmd.Name {
		case repl.CommandExit:
			return
		case repl.CommandHelp:
			printHelp(os.Stdout, completer)
			continue
		}

		if err := execute(writer, c, cmd); err != nil {
			log.Debug().Err(err).Str("line", line).Msg("command failed")
			errs.Print(err, cmd.Fragments)
		}
	}
	rl.Clean()
}

func printHelp(w io.Writer, completer *readline.PrefixCompleter) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, completer.Tree("    "))
	fmt.Fprintln(w, "A line without a command is evaluated. Separate every token with whitespace: ( 1 + 2 ) * 3")
}

// execute runs a parsed eval, postfix or tokens command and writes its result
func execute(writer repl.OutputWriter, c *calc.Calculator, cmd repl.Command) error {
	switch cmd.Name {
	case repl.CommandTokens:
		tokens := calc.TokenizeAll(cmd.Fragments)
		return writer.Write(repl.NewTokenListing(tokens, cmd.Fragments))

	case repl.CommandPostfix:
		tokens := calc.TokenizeAll(cmd.Fragments)
		if c.Strict() {
			if err := calc.CheckTokens(cmd.Fragments, tokens); err != nil {
				return err
			}
		}
		postfix, err := calc.Converter{Log: c.Log(), Strict: c.Strict()}.Convert(tokens)
		if err != nil {
			return err
		}
		return writer.Write(repl.NewTokenListing(postfix, nil))

	default:
		result, err := c.Evaluate(cmd.Fragments)
		if err != nil {
			return err
		}
		return writer.Write(repl.NewEvaluation(result, false))
	}
}
