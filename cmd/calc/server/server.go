/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/calc/pkg/calc"
	"github.com/dburkart/calc/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve expression evaluation and metrics over HTTP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(
			logger,
			calc.New(logger, viper.GetBool("calc.strict")),
			viper.GetInt("server.port"),
		)

		if err := srv.Serve(); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port to serve /eval and /metrics on")

	// Bind flags to viper
	viper.BindPFlag("server.port", Command.Flags().Lookup("port"))
}
