//
// registry.go
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

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/bloqs"
	"github.com/markkurossi/bloq/qdt"
)

// bloqSyntax documents the bloq specifications the commands accept.
const bloqSyntax = `Bloq specifications:
  x | z | h | cnot | toffoli | swap
  zero | one | plus | zero-effect | one-effect | plus-effect
  i:N                            N-bit identity
  xork:TYPE:K                    XOR the constant K into the register
  split:TYPE | join:TYPE         split a register into bits and back
  cast:FROM:TO                   reinterpret a register's bits
  alloc:TYPE | free:TYPE         allocate and discard registers
  partition:N:NAME=TYPE,...      split an N-bit register into parts
  unpartition:N:NAME=TYPE,...    gather the parts back

Types use the qdt syntax: bit, any7, u8, i6, fxp8.4. Array part
registers append a length to the type: bit[2], u4[3].`

// parseBloq builds the bloq named by the specification. The
// specification is the bloq name followed by colon-separated
// arguments, for example "cnot", "i:3", or "xork:u5:21".
func parseBloq(spec string) (bloq.Bloq, error) {
	fields := strings.Split(spec, ":")
	name := fields[0]
	args := fields[1:]

	arity := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d arguments, got %d",
				name, n, len(args))
		}
		return nil
	}

	switch name {
	case "x", "z", "h", "cnot", "toffoli", "swap",
		"zero", "one", "plus", "zero-effect", "one-effect", "plus-effect":
		if err := arity(0); err != nil {
			return nil, err
		}
		switch name {
		case "x":
			return bloqs.XGate{}, nil
		case "z":
			return bloqs.ZGate{}, nil
		case "h":
			return bloqs.Hadamard{}, nil
		case "cnot":
			return bloqs.CNOT{}, nil
		case "toffoli":
			return bloqs.Toffoli{}, nil
		case "swap":
			return bloqs.Swap{}, nil
		case "zero":
			return bloqs.ZeroState{}, nil
		case "one":
			return bloqs.OneState{}, nil
		case "plus":
			return bloqs.PlusState{}, nil
		case "zero-effect":
			return bloqs.ZeroEffect{}, nil
		case "one-effect":
			return bloqs.OneEffect{}, nil
		default:
			return bloqs.PlusEffect{}, nil
		}

	case "i", "identity":
		if err := arity(1); err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		return bloqs.Identity{N: n}, nil

	case "xork":
		if err := arity(2); err != nil {
			return nil, err
		}
		dt, err := qdt.Parse(args[0])
		if err != nil {
			return nil, err
		}
		k, err := strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			return nil, err
		}
		return bloqs.NewXorK(dt, uint64(k))

	case "split":
		if err := arity(1); err != nil {
			return nil, err
		}
		dt, err := qdt.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return bloqs.NewSplit(dt)

	case "join":
		if err := arity(1); err != nil {
			return nil, err
		}
		dt, err := qdt.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return bloqs.NewJoin(dt)

	case "cast":
		if err := arity(2); err != nil {
			return nil, err
		}
		from, err := qdt.Parse(args[0])
		if err != nil {
			return nil, err
		}
		to, err := qdt.Parse(args[1])
		if err != nil {
			return nil, err
		}
		return bloqs.NewCast(from, to)

	case "alloc":
		if err := arity(1); err != nil {
			return nil, err
		}
		dt, err := qdt.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return bloqs.Allocate{Dtype: dt}, nil

	case "free":
		if err := arity(1); err != nil {
			return nil, err
		}
		dt, err := qdt.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return bloqs.Free{Dtype: dt}, nil

	case "partition", "unpartition":
		if err := arity(2); err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		regs, err := parsePartRegs(args[1])
		if err != nil {
			return nil, err
		}
		p, err := bloqs.NewPartition(n, regs)
		if err != nil {
			return nil, err
		}
		if name == "unpartition" {
			return p.Adjoint(), nil
		}
		return p, nil

	default:
		return nil, fmt.Errorf("unknown bloq: %s", name)
	}
}

// parsePartRegs parses a comma-separated list of NAME=TYPE part
// registers. Array parts are given as NAME=TYPE[LEN].
func parsePartRegs(val string) ([]bloq.Register, error) {
	var regs []bloq.Register
	for _, part := range strings.Split(val, ",") {
		name, typ, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid part register: %s", part)
		}
		length := -1
		if idx := strings.IndexByte(typ, '['); idx >= 0 {
			if !strings.HasSuffix(typ, "]") {
				return nil, fmt.Errorf("invalid part register: %s", part)
			}
			var err error
			length, err = strconv.Atoi(typ[idx+1 : len(typ)-1])
			if err != nil {
				return nil, err
			}
			typ = typ[:idx]
		}
		dt, err := qdt.Parse(typ)
		if err != nil {
			return nil, err
		}
		if length < 0 {
			regs = append(regs, bloq.NewRegister(name, dt))
		} else {
			regs = append(regs, bloq.NewArrayRegister(name, dt, length))
		}
	}
	return regs, nil
}
