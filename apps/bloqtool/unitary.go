//
// unitary.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/markkurossi/bloq/tensor"
)

var unitaryCmd = &cobra.Command{
	Use:   "unitary BLOQ",
	Short: "Contract the bloq's tensor network into a matrix.",
	Long: `Unitary builds the bloq's tensor network, contracts it, and
prints the resulting matrix: output basis states on rows, input
basis states on columns. States print as column vectors and effects
as row vectors.

` + bloqSyntax,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseBloq(args[0])
		if err != nil {
			return err
		}
		m, err := tensor.Unitary(b)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		rows, cols := m.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				fmt.Fprintf(out, " %12s", fmtComplex(m.At(i, j)))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitaryCmd)
}

// fmtComplex renders the amplitude, dropping the real or imaginary
// part when it vanishes.
func fmtComplex(v complex128) string {
	const eps = 1e-9

	re, im := real(v), imag(v)
	if math.Abs(im) < eps {
		if math.Abs(re) < eps {
			return "0"
		}
		return strconv.FormatFloat(re, 'g', 4, 64)
	}
	if math.Abs(re) < eps {
		return strconv.FormatFloat(im, 'g', 4, 64) + "i"
	}
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s%s%si",
		strconv.FormatFloat(re, 'g', 4, 64), sign,
		strconv.FormatFloat(im, 'g', 4, 64))
}
