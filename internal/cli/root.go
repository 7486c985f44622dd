// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwd-strength [COMMAND] [OPTIONS]",
		Short: "Analyze password strength locally",
		Long: "Analyze the strength of passwords: length, character classes, entropy, repeated and " +
			"sequential patterns, and presence on a common passwords reference list. All analysis runs " +
			"locally; passwords are never stored, logged, or sent anywhere. " +
			"This command also helps you fetch and compile reference lists and serve the analyzer as an API",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
