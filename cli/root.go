// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"ctlviz/config"
	"ctlviz/initapp"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the ctlviz command. All subcommands share the services
// set up from configuration c.
func NewRootCmd(c config.Config) *cobra.Command {
	var logLevel string
	var logFormat string
	a := initapp.NewInitApp(c)

	cmd := &cobra.Command{
		Use:   c.GetAppName(),
		Short: "Control system display properties",
		Long:  `Validate plot curve properties and follow bit-mapped indicator states of live channels.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Initialize(cmd.ErrOrStderr(), func(appConfig *config.AppConfig) {
				if logLevel != "" {
					appConfig.LogConfig.Level = logLevel
				}
				if logFormat != "" {
					appConfig.LogConfig.Format = logFormat
				}
			})
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json, logfmt)")

	cmd.AddCommand(newCurveCmd(a))
	cmd.AddCommand(newLedCmd(a))
	return cmd
}
