//
// call.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
)

var callCmd = &cobra.Command{
	Use:   "call BLOQ [NAME=VALUE...]",
	Short: "Apply the bloq's classical action to the input values.",
	Long: `Call assigns the values to the bloq's input registers,
applies the bloq's classical action, and prints the output register
values. Values are integers in the register's data type; shaped
registers are not supported on the command line.

` + bloqSyntax,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := parseBloq(args[0])
		if err != nil {
			return err
		}
		ins, err := parseVals(b, args[1:])
		if err != nil {
			return err
		}
		outs, err := classical.CallMap(b, ins)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, reg := range b.Signature().Rights() {
			fmt.Fprintf(out, "%s = %s\n", reg.Name,
				outs[reg.Name].Format(reg.Dtype))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}

// parseVals parses the NAME=VALUE arguments into the bloq's input
// register values.
func parseVals(b bloq.Bloq, args []string) (classical.Vals, error) {
	regs := make(map[string]bloq.Register)
	for _, reg := range b.Signature().Lefts() {
		regs[reg.Name] = reg
	}

	ins := make(classical.Vals)
	for _, arg := range args {
		name, val, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid argument: %s", arg)
		}
		reg, ok := regs[name]
		if !ok {
			return nil, fmt.Errorf("%s has no input register %s", b, name)
		}
		if len(reg.Shape) > 0 {
			return nil, fmt.Errorf("register %s is shaped", name)
		}
		v, err := strconv.ParseInt(val, 0, 64)
		if err != nil {
			return nil, err
		}
		ins[name] = classical.ScalarInt(v)
	}
	return ins, nil
}
