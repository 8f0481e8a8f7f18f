//
// main.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bloqtool",
	Short: "Inspect and simulate bloqs.",
	Long: `Bloqtool builds the named bloq and runs one of the analysis
backends on it: signature and decomposition info, classical
simulation, truth tables, tensor-network contraction, and Graphviz
rendering.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetCount("verbose")
		switch {
		case verbose == 1:
			log.SetLevel(log.DebugLevel)
		case verbose > 1:
			log.SetLevel(log.TraceLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v",
		"increase logging verbosity")
}
