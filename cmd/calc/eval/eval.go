/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/dburkart/calc/pkg/calc"
	"github.com/dburkart/calc/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "eval [flags] [--] <fragment>...",
	Short: "Evaluate an expression given as separate arguments",
	Example: `  calc eval 2 + 3 '*' '(' 4 - 1 ')' / 5
  calc eval "2 + 3 * ( 4 - 1 ) / 5"
  calc eval -- -10 / 4`,
	Args: cobra.MinimumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("eval.output")
		if err := checkFlags(output, viper.GetBool("eval.postfix")); err != nil {
			log.Fatal().Err(err).Str("output", output).Msg("invalid flags")
		}

		c := calc.New(log, viper.GetBool("calc.strict"))
		if err := run(os.Stdout, c, args, output); err != nil {
			log.Debug().Err(err).Strs("fragments", args).Msg("evaluation failed")
			repl.NewErrorPrinter(os.Stderr).Print(err, fragmentsOf(args))
			os.Exit(1)
		}
	},
}

func init() {
	// Expression fragments such as "-" and "-10" look like flags, so stop
	// parsing flags at the first fragment
	Command.Flags().SetInterspersed(false)

	// Flags for this command
	Command.Flags().StringP("output", "o", "plain", "Output format of the result [plain, text, csv, json, yaml]")
	Command.Flags().Bool("postfix", false, "Print the postfix form of the expression before the result (plain output only)")
	Command.Flags().Bool("humanize", false, "Group the digits of the result")

	// Bind flags to viper
	viper.BindPFlag("eval.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("eval.postfix", Command.Flags().Lookup("postfix"))
	viper.BindPFlag("eval.humanize", Command.Flags().Lookup("humanize"))
}

func checkFlags(output string, postfix bool) error {
	if !repl.ValidFormat(output) {
		return errors.Errorf("unsupported output format %q", output)
	}
	if postfix && output != "plain" {
		return errors.Errorf("--postfix cannot be combined with %s output", output)
	}
	return nil
}

// A single quoted argument holds the whole expression
func fragmentsOf(args []string) []string {
	if len(args) == 1 {
		return calc.Fragments(args[0])
	}
	return args
}

func run(w io.Writer, c *calc.Calculator, args []string, output string) error {
	result, err := c.Evaluate(fragmentsOf(args))
	if err != nil {
		return err
	}

	if output == "plain" && viper.GetBool("eval.postfix") {
		fmt.Fprintln(w, calc.Join(result.Postfix))
	}

	return repl.NewOutputWriter(w, output).Write(repl.NewEvaluation(result, viper.GetBool("eval.humanize")))
}
