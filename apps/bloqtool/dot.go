//
// dot.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/markkurossi/bloq"
)

var dotCmd = &cobra.Command{
	Use:   "dot BLOQ",
	Short: "Render the bloq's instance graph as Graphviz dot.",
	Long: `Dot renders the bloq's decomposition as a Graphviz graph:
boundary registers as plaintext nodes, bloq instances as boxes, and
connections as labeled edges. Atomic bloqs render as a single
instance.

` + bloqSyntax,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseBloq(args[0])
		if err != nil {
			return err
		}
		cb, err := bloq.AsComposite(b)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("output")
		if len(file) == 0 {
			cb.Dot(cmd.OutOrStdout())
			return nil
		}
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		cb.Dot(f)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotCmd.Flags().StringP("output", "o", "", "write the graph to the file")
}
