//
// truthtable.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkurossi/bloq/classical"
)

var truthTableCmd = &cobra.Command{
	Use:   "truth-table BLOQ",
	Short: "Print the bloq's classical truth table.",
	Long: `Truth-table sweeps the bloq's classical action over every
input combination and prints the resulting table. The bloq must
support classical simulation and its input registers must span at
most ` + fmt.Sprint(classical.MaxTableBits) + ` bits.

` + bloqSyntax,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseBloq(args[0])
		if err != nil {
			return err
		}
		tt, err := classical.NewTruthTable(cmd.Context(), b)
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			fmt.Fprint(cmd.OutOrStdout(), tt.Format())
			return nil
		}
		tt.Render(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(truthTableCmd)
	truthTableCmd.Flags().Bool("plain", false,
		"print the table without box drawing")
}
