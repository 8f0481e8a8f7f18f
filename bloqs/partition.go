//
// partition.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"errors"
	"fmt"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
	"github.com/markkurossi/bloq/qdt"
	"github.com/markkurossi/bloq/tensor"
)

// Partition splits an n-bit register x into a collection of typed,
// shaped part registers. The parts cover the register's bits in
// order, the first part at the most significant end. The adjoint
// direction gathers the parts back into the register.
type Partition struct {
	n       int
	regs    []bloq.Register
	adjoint bool
}

// NewPartition creates a partition of an n-bit register into the
// part registers. The part widths must sum up to n.
func NewPartition(n int, regs []bloq.Register) (*Partition, error) {
	if err := qdt.Any(n).Check(); err != nil {
		return nil, err
	}
	if len(regs) == 0 {
		return nil, errors.New("partition: no part registers")
	}
	seen := make(map[string]bool)
	var total int
	for _, reg := range regs {
		if err := reg.Check(); err != nil {
			return nil, err
		}
		if seen[reg.Name] {
			return nil, fmt.Errorf("partition: duplicate part register %s",
				reg.Name)
		}
		seen[reg.Name] = true
		total += reg.TotalBits()
	}
	if total != n {
		return nil, fmt.Errorf("partition: parts cover %d bits, expected %d",
			total, n)
	}
	p := &Partition{
		n:    n,
		regs: append([]bloq.Register(nil), regs...),
	}
	if err := p.selfTest(); err != nil {
		return nil, err
	}
	return p, nil
}

// selfTest round-trips the all-ones pattern through the partition
// and its adjoint, catching an inconsistent part layout at
// construction time.
func (p *Partition) selfTest() error {
	probe := ^uint64(0)
	if p.n < 64 {
		probe = 1<<p.n - 1
	}
	parts, err := p.partition(probe)
	if err != nil {
		return err
	}
	got, err := p.unpartition(parts)
	if err != nil {
		return err
	}
	if got != probe {
		return fmt.Errorf("partition: inconsistent part layout")
	}
	return nil
}

// N returns the width of the partitioned register.
func (p *Partition) N() int {
	return p.n
}

// Regs returns the part registers.
func (p *Partition) Regs() []bloq.Register {
	return append([]bloq.Register(nil), p.regs...)
}

// Signature implements bloq.Bloq.
func (p *Partition) Signature() bloq.Signature {
	lumpSide, partSide := bloq.SideLeft, bloq.SideRight
	if p.adjoint {
		lumpSide, partSide = bloq.SideRight, bloq.SideLeft
	}
	regs := make([]bloq.Register, 0, len(p.regs)+1)
	regs = append(regs,
		bloq.NewRegister("x", qdt.Any(p.n)).WithSide(lumpSide))
	for _, reg := range p.regs {
		regs = append(regs, reg.WithSide(partSide))
	}
	return bloq.MustSignature(regs...)
}

func (p *Partition) String() string {
	if p.adjoint {
		return "Unpartition"
	}
	return "Partition"
}

// Adjoint implements bloq.Adjointable.
func (p *Partition) Adjoint() bloq.Bloq {
	return &Partition{
		n:       p.n,
		regs:    p.regs,
		adjoint: !p.adjoint,
	}
}

// Decompose implements bloq.Decomposable. Partition is a primitive
// and reports bloq.ErrAtomic.
func (p *Partition) Decompose() (*bloq.CompositeBloq, error) {
	return atomic(p)
}

// partition slices the raw value into the part register values.
func (p *Partition) partition(raw uint64) (classical.Vals, error) {
	bits, err := qdt.Any(p.n).ToBits(raw)
	if err != nil {
		return nil, err
	}
	outs := make(classical.Vals)
	off := 0
	for _, reg := range p.regs {
		w := reg.Dtype.Bits
		count := reg.NumElements()
		elems := make([]uint64, count)
		for i := 0; i < count; i++ {
			elems[i], err = reg.Dtype.FromBits(bits[off : off+w])
			if err != nil {
				return nil, fmt.Errorf("register %s: %s", reg.Name, err)
			}
			off += w
		}
		outs[reg.Name], err = classical.Array(reg.Shape, elems...)
		if err != nil {
			return nil, err
		}
	}
	return outs, nil
}

// unpartition concatenates the part register values back into the
// raw value.
func (p *Partition) unpartition(ins classical.Vals) (uint64, error) {
	bits := make([]uint8, 0, p.n)
	for _, reg := range p.regs {
		for _, raw := range ins[reg.Name].Flat() {
			b, err := reg.Dtype.ToBits(raw)
			if err != nil {
				return 0, fmt.Errorf("register %s: %s", reg.Name, err)
			}
			bits = append(bits, b...)
		}
	}
	return qdt.Any(p.n).FromBits(bits)
}

// CallClassically implements classical.Bloq.
func (p *Partition) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	if p.adjoint {
		raw, err := p.unpartition(vals)
		if err != nil {
			return nil, err
		}
		return classical.Vals{
			"x": classical.Scalar(raw),
		}, nil
	}
	return p.partition(vals["x"].Uint())
}

// Tensors implements tensor.Bloq.
func (p *Partition) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	lump := in["x"]
	parts := out
	if p.adjoint {
		lump = out["x"]
		parts = in
	}
	lumpCxn := lump.One()

	result := make([]*tensor.Tensor, 0, p.n)
	off := 0
	for _, reg := range p.regs {
		for _, cxn := range parts[reg.Name].Flat() {
			for b := 0; b < reg.Dtype.Bits; b++ {
				partIdx := tensor.Index{Cxn: cxn, Bit: b}
				lumpIdx := tensor.Index{Cxn: lumpCxn, Bit: off}
				if p.adjoint {
					result = append(result, tensor.Eye2(lumpIdx, partIdx))
				} else {
					result = append(result, tensor.Eye2(partIdx, lumpIdx))
				}
				off++
			}
		}
	}
	return result, nil
}
