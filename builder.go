//
// builder.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/markkurossi/bloq/qdt"
)

// Builder constructs composite bloqs. The builder hands out soquets
// for the composite's input registers, threads them through added
// sub-bloqs, and finally binds them to the output registers. Every
// soquet must be consumed exactly once; the builder rejects a wiring
// fault at the operation that commits it.
//
// A builder is single-use: Finalize seals it and further operations
// fail.
type Builder struct {
	regs      []Register
	insts     []BloqInstance
	cxns      []Connection
	avail     map[Soquet]qdt.Info
	finalized bool
}

// NewBuilder creates an empty composite bloq builder.
func NewBuilder() *Builder {
	return &Builder{
		avail: make(map[Soquet]qdt.Info),
	}
}

// AddRegister declares a register of the composite's signature. For
// a register with an input side the builder returns the soquets
// produced by the LeftDangle boundary, shaped like the register. For
// a RIGHT register the returned soquets are empty and the register
// is bound at Finalize.
func (b *Builder) AddRegister(reg Register) (Soquets, error) {
	if b.finalized {
		return Soquets{}, wireErrorf("builder is already finalized")
	}
	if err := reg.Check(); err != nil {
		return Soquets{}, err
	}
	for _, old := range b.regs {
		if old.Name == reg.Name &&
			(old.Side|reg.Side != SideThru || old.Side&reg.Side != 0) {
			return Soquets{}, wireErrorf("duplicate register name: %s",
				reg.Name)
		}
	}
	b.regs = append(b.regs, reg)

	if !reg.Side.IsLeft() {
		return Soquets{}, nil
	}
	soqs := soquetsFor(LeftDangle, reg)
	for _, soq := range soqs.Flat() {
		b.avail[soq] = reg.Dtype
	}
	return soqs, nil
}

// AddQAny declares a scalar THRU register of n untyped bits. It is a
// shorthand for AddRegister.
func (b *Builder) AddQAny(name string, n int) (Soquets, error) {
	return b.AddRegister(NewRegister(name, qdt.Any(n)))
}

// Add adds an instance of the bloq to the composite. The ins map
// assigns a soquet array to every input register of the bloq. The
// given soquets are consumed and the soquets produced by the new
// instance are returned, keyed by output register name.
func (b *Builder) Add(bl Bloq, ins map[string]Soquets) (
	map[string]Soquets, error) {

	if b.finalized {
		return nil, wireErrorf("builder is already finalized")
	}
	sig := bl.Signature()

	lefts := sig.Lefts()
	known := make(map[string]bool)
	for _, reg := range lefts {
		known[reg.Name] = true
	}
	for name := range ins {
		if !known[name] {
			return nil, wireErrorf("%s has no input register %s", bl, name)
		}
	}

	id := InstanceID(len(b.insts))
	used := make(map[Soquet]bool)
	var cxns []Connection
	for _, reg := range lefts {
		soqs, ok := ins[reg.Name]
		if !ok {
			return nil, wireErrorf("missing input %s for %s", reg.Name, bl)
		}
		if !ShapeEq(soqs.Shape(), reg.Shape) ||
			soqs.Len() != reg.NumElements() {
			return nil, wireErrorf(
				"register %s of %s: got shape %v, want %v",
				reg.Name, bl, soqs.Shape(), reg.Shape)
		}
		for idx, soq := range soqs.Flat() {
			dt, ok := b.avail[soq]
			if !ok || used[soq] {
				return nil, wireErrorf("soquet %s is not available", soq)
			}
			used[soq] = true
			if dt.Bits != reg.Dtype.Bits {
				return nil, wireErrorf(
					"register %s of %s: connecting %s to %s",
					reg.Name, bl, dt, reg.Dtype)
			}
			cxns = append(cxns, Connection{
				Left: soq,
				Right: Soquet{
					Binst: id,
					Reg:   reg.Name,
					Idx:   idx,
				},
			})
		}
	}

	// The wiring is valid; commit the instance.
	for _, cxn := range cxns {
		delete(b.avail, cxn.Left)
	}
	b.insts = append(b.insts, BloqInstance{
		ID:   id,
		Bloq: bl,
	})
	b.cxns = append(b.cxns, cxns...)

	outs := make(map[string]Soquets)
	for _, reg := range sig.Rights() {
		soqs := soquetsFor(id, reg)
		for _, soq := range soqs.Flat() {
			b.avail[soq] = reg.Dtype
		}
		outs[reg.Name] = soqs
	}
	return outs, nil
}

// Finalize seals the builder and returns the finished composite. The
// outs map binds a soquet array to every output register of the
// composite. Output names that were not declared with AddRegister
// are inferred as RIGHT registers from their soquets, ordered by
// name after the declared registers. Finalize fails if an output
// register is left unwired or a soquet is left dangling; a failed
// finalize leaves the builder unmodified.
func (b *Builder) Finalize(outs map[string]Soquets) (*CompositeBloq, error) {
	if b.finalized {
		return nil, wireErrorf("builder is already finalized")
	}

	avail := make(map[Soquet]qdt.Info, len(b.avail))
	for soq, dt := range b.avail {
		avail[soq] = dt
	}
	cxns := append([]Connection(nil), b.cxns...)

	// bind consumes the soquets and connects them to the RightDangle
	// endpoints of the output register.
	bind := func(reg Register, soqs Soquets) error {
		if !ShapeEq(soqs.Shape(), reg.Shape) ||
			soqs.Len() != reg.NumElements() {
			return wireErrorf("output register %s: got shape %v, want %v",
				reg.Name, soqs.Shape(), reg.Shape)
		}
		for idx, soq := range soqs.Flat() {
			dt, ok := avail[soq]
			if !ok {
				return wireErrorf("soquet %s is not available", soq)
			}
			if dt.Bits != reg.Dtype.Bits {
				return wireErrorf("output register %s: connecting %s to %s",
					reg.Name, dt, reg.Dtype)
			}
			delete(avail, soq)
			cxns = append(cxns, Connection{
				Left: soq,
				Right: Soquet{
					Binst: RightDangle,
					Reg:   reg.Name,
					Idx:   idx,
				},
			})
		}
		return nil
	}

	declared := make(map[string]bool)
	declaredRight := make(map[string]bool)
	for _, reg := range b.regs {
		declared[reg.Name] = true
		if reg.Side.IsRight() {
			declaredRight[reg.Name] = true
		}
	}

	regs := append([]Register(nil), b.regs...)
	for _, reg := range b.regs {
		if !reg.Side.IsRight() {
			continue
		}
		soqs, ok := outs[reg.Name]
		if !ok {
			return nil, wireErrorf("output register %s is not wired",
				reg.Name)
		}
		if err := bind(reg, soqs); err != nil {
			return nil, err
		}
	}

	// Infer RIGHT registers for the undeclared output names.
	var extra []string
	for name := range outs {
		if declaredRight[name] {
			continue
		}
		if declared[name] {
			return nil, wireErrorf("register %s is not an output register",
				name)
		}
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		soqs := outs[name]
		if soqs.Len() == 0 {
			return nil, wireErrorf("output register %s has no soquets", name)
		}
		var dt qdt.Info
		for i, soq := range soqs.Flat() {
			got, ok := avail[soq]
			if !ok {
				return nil, wireErrorf("soquet %s is not available", soq)
			}
			if i == 0 {
				dt = got
			} else if got != dt {
				return nil, wireErrorf(
					"output register %s mixes types %s and %s",
					name, dt, got)
			}
		}
		reg := Register{
			Name:  name,
			Dtype: dt,
			Shape: soqs.Shape(),
			Side:  SideRight,
		}
		regs = append(regs, reg)
		if err := bind(reg, soqs); err != nil {
			return nil, err
		}
	}

	if len(avail) > 0 {
		var dangling []Soquet
		for soq := range avail {
			dangling = append(dangling, soq)
		}
		sort.Slice(dangling, func(i, j int) bool {
			if dangling[i].Binst != dangling[j].Binst {
				return dangling[i].Binst < dangling[j].Binst
			}
			if dangling[i].Reg != dangling[j].Reg {
				return dangling[i].Reg < dangling[j].Reg
			}
			return dangling[i].Idx < dangling[j].Idx
		})
		return nil, wireErrorf("dangling soquets: %v", dangling)
	}

	sig, err := NewSignature(regs...)
	if err != nil {
		return nil, err
	}
	cb, err := newCompositeBloq(sig, b.insts, cxns)
	if err != nil {
		return nil, err
	}
	b.finalized = true

	log.Debugf("finalized %s: %d instances, %d connections",
		sig, len(b.insts), len(cxns))

	return cb, nil
}
