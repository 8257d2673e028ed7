/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package calc

import (
	"fmt"
	"os"

	"github.com/dburkart/calc/cmd/calc/eval"
	"github.com/dburkart/calc/cmd/calc/repl"
	"github.com/dburkart/calc/cmd/calc/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "calc",
		Short: "calc evaluates arithmetic expressions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject invalid tokens and mismatched grouping instead of ignoring them")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the calc config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("calc.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("calc.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("calc.strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("calc version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	eval.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	server.Command.Version = rootCmd.Version
	rootCmd.AddCommand(eval.Command)
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(server.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
