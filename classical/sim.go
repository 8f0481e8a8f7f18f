//
// sim.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package classical

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/markkurossi/bloq"
)

// Bloq is a bloq with a classical action. The simulator discovers
// the action through this interface; bloqs without it are simulated
// through their decomposition.
type Bloq interface {
	bloq.Bloq

	// CallClassically applies the bloq's classical action to the
	// input register values and returns the output register values.
	CallClassically(vals Vals) (Vals, error)
}

// checkVals verifies the values against the registers: a value for
// every register, no values for unknown registers, and every value
// inside its register's domain.
func checkVals(regs []bloq.Register, vals Vals, what string) error {
	known := make(map[string]bool)
	for _, reg := range regs {
		v, ok := vals[reg.Name]
		if !ok {
			return fmt.Errorf("missing %s value for register %s",
				what, reg.Name)
		}
		if err := checkRegister(reg, v); err != nil {
			return err
		}
		known[reg.Name] = true
	}
	for name := range vals {
		if !known[name] {
			return fmt.Errorf("unknown %s register %s", what, name)
		}
	}
	return nil
}

// CallMap applies the bloq's classical action to the input register
// values and returns the output register values keyed by register
// name. The inputs are validated against the bloq's input registers
// and the outputs against its output registers.
func CallMap(b bloq.Bloq, ins Vals) (Vals, error) {
	sig := b.Signature()
	if err := checkVals(sig.Lefts(), ins, "input"); err != nil {
		return nil, err
	}

	var outs Vals
	var err error
	switch impl := b.(type) {
	case *bloq.CompositeBloq:
		outs, err = CallComposite(impl, ins)

	case Bloq:
		vals := make(Vals, len(ins))
		for name, v := range ins {
			vals[name] = v
		}
		outs, err = impl.CallClassically(vals)

	default:
		cb, derr := bloq.Decompose(b)
		if derr != nil {
			return nil, fmt.Errorf(
				"%s does not support classical simulation: %w",
				b, errors.ErrUnsupported)
		}
		outs, err = CallComposite(cb, ins)
	}
	if err != nil {
		return nil, err
	}
	if err := checkVals(sig.Rights(), outs, "output"); err != nil {
		return nil, fmt.Errorf("%s: %s", b, err)
	}
	return outs, nil
}

// Call applies the bloq's classical action to the input register
// values and returns the output register values in the signature's
// output register order.
func Call(b bloq.Bloq, ins Vals) ([]Value, error) {
	outs, err := CallMap(b, ins)
	if err != nil {
		return nil, err
	}
	rights := b.Signature().Rights()
	result := make([]Value, 0, len(rights))
	for _, reg := range rights {
		result = append(result, outs[reg.Name])
	}
	return result, nil
}

// CallComposite propagates the input register values through the
// composite's graph in topological order and returns the composite's
// output register values. Values crossing a connection between
// registers of different kinds are reinterpreted bitwise in the
// consumer's data type.
func CallComposite(cb *bloq.CompositeBloq, ins Vals) (Vals, error) {
	sig := cb.Signature()
	if err := checkVals(sig.Lefts(), ins, "input"); err != nil {
		return nil, err
	}

	soqVals := make(map[bloq.Soquet]uint64)
	for _, reg := range sig.Lefts() {
		for idx, raw := range ins[reg.Name].Flat() {
			soqVals[bloq.Soquet{
				Binst: bloq.LeftDangle,
				Reg:   reg.Name,
				Idx:   idx,
			}] = raw
		}
	}

	// gather collects the values feeding the register over the
	// connections.
	gather := func(reg bloq.Register, conns []bloq.Connection) (
		Value, error) {
		elems := make([]uint64, len(conns))
		for i, cxn := range conns {
			raw, ok := soqVals[cxn.Left]
			if !ok {
				return Value{}, fmt.Errorf("no value for soquet %s",
					cxn.Left)
			}
			elems[i] = reg.Dtype.Canonical(raw)
		}
		return fromFlat(reg.Shape, elems), nil
	}

	for _, bi := range cb.SortedInstances() {
		inConns, err := cb.IncomingConns(bi.ID)
		if err != nil {
			return nil, err
		}
		subIns := make(Vals)
		for _, reg := range bi.Bloq.Signature().Lefts() {
			subIns[reg.Name], err = gather(reg, inConns[reg.Name])
			if err != nil {
				return nil, err
			}
		}
		log.Tracef("call %s%v", bi, subIns)

		subOuts, err := CallMap(bi.Bloq, subIns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", bi, err)
		}
		for _, reg := range bi.Bloq.Signature().Rights() {
			for idx, raw := range subOuts[reg.Name].Flat() {
				soqVals[bloq.Soquet{
					Binst: bi.ID,
					Reg:   reg.Name,
					Idx:   idx,
				}] = raw
			}
		}
	}

	outConns, err := cb.IncomingConns(bloq.RightDangle)
	if err != nil {
		return nil, err
	}
	outs := make(Vals)
	for _, reg := range sig.Rights() {
		outs[reg.Name], err = gather(reg, outConns[reg.Name])
		if err != nil {
			return nil, err
		}
	}
	return outs, nil
}
