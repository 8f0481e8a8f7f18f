//
// info.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
	"github.com/markkurossi/bloq/tensor"
)

var infoCmd = &cobra.Command{
	Use:   "info BLOQ",
	Short: "Print the bloq's signature and capabilities.",
	Long: `Info prints the bloq's registers and the backends it
supports. For decomposable bloqs it also prints the fingerprint and
the instance graph of the decomposition.

` + bloqSyntax,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseBloq(args[0])
		if err != nil {
			return err
		}
		return info(cmd.OutOrStdout(), b)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func info(out io.Writer, b bloq.Bloq) error {
	fmt.Fprintf(out, "%s\n", b)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Register").SetAlign(tabulate.ML)
	tab.Header("Type").SetAlign(tabulate.ML)
	tab.Header("Shape").SetAlign(tabulate.MR)
	tab.Header("Side").SetAlign(tabulate.ML)
	for _, reg := range b.Signature().All() {
		row := tab.Row()
		row.Column(reg.Name)
		row.Column(reg.Dtype.String())
		if len(reg.Shape) > 0 {
			row.Column(fmt.Sprintf("%v", reg.Shape))
		} else {
			row.Column("")
		}
		row.Column(reg.Side.String())
	}
	tab.Print(out)

	cb, derr := bloq.Decompose(b)

	var caps []string
	switch {
	case derr == nil:
		caps = append(caps, "decompose")
	case errors.Is(derr, bloq.ErrAtomic):
		caps = append(caps, "atomic")
	case errors.Is(derr, errors.ErrUnsupported):
	default:
		return derr
	}
	if _, ok := b.(bloq.Adjointable); ok {
		caps = append(caps, "adjoint")
	}
	if _, ok := b.(classical.Bloq); ok {
		caps = append(caps, "classical")
	}
	if _, ok := b.(tensor.Bloq); ok {
		caps = append(caps, "tensor")
	}
	fmt.Fprintf(out, "capabilities: %s\n", strings.Join(caps, ", "))

	if cb != nil {
		fmt.Fprintf(out, "fingerprint : %s\n", cb.Fingerprint())
		fmt.Fprint(out, cb.DebugText())
	}
	return nil
}
