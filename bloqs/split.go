//
// split.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
	"github.com/markkurossi/bloq/qdt"
	"github.com/markkurossi/bloq/tensor"
)

// Split reinterprets a register of the data type as an array of its
// bits, the most significant bit first.
type Split struct {
	Dtype qdt.Info
}

// NewSplit creates a split bloq for the data type.
func NewSplit(dt qdt.Info) (Split, error) {
	if err := dt.Check(); err != nil {
		return Split{}, err
	}
	return Split{
		Dtype: dt,
	}, nil
}

// Signature implements bloq.Bloq.
func (g Split) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("x", g.Dtype).WithSide(bloq.SideLeft),
		bloq.NewArrayRegister("x", qdt.Bit(), g.Dtype.Bits).
			WithSide(bloq.SideRight))
}

func (g Split) String() string {
	return "Split"
}

// Adjoint implements bloq.Adjointable.
func (g Split) Adjoint() bloq.Bloq {
	return Join{
		Dtype: g.Dtype,
	}
}

// Decompose implements bloq.Decomposable by reporting
// bloq.ErrAtomic.
func (g Split) Decompose() (*bloq.CompositeBloq, error) {
	return atomic(g)
}

// CallClassically implements classical.Bloq.
func (g Split) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	bits, err := g.Dtype.ToBits(vals["x"].Uint())
	if err != nil {
		return nil, err
	}
	return classical.Vals{
		"x": classical.BitArray(bits...),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g Split) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	inCxn := in["x"].One()
	outGrp := out["x"]
	result := make([]*tensor.Tensor, 0, g.Dtype.Bits)
	for i, cxn := range outGrp.Flat() {
		result = append(result, tensor.Eye2(
			tensor.Index{Cxn: cxn},
			tensor.Index{Cxn: inCxn, Bit: i}))
	}
	return result, nil
}

// Join reinterprets an array of bits as a register of the data type,
// the most significant bit first.
type Join struct {
	Dtype qdt.Info
}

// NewJoin creates a join bloq for the data type.
func NewJoin(dt qdt.Info) (Join, error) {
	if err := dt.Check(); err != nil {
		return Join{}, err
	}
	return Join{
		Dtype: dt,
	}, nil
}

// Signature implements bloq.Bloq.
func (g Join) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewArrayRegister("x", qdt.Bit(), g.Dtype.Bits).
			WithSide(bloq.SideLeft),
		bloq.NewRegister("x", g.Dtype).WithSide(bloq.SideRight))
}

func (g Join) String() string {
	return "Join"
}

// Adjoint implements bloq.Adjointable.
func (g Join) Adjoint() bloq.Bloq {
	return Split{
		Dtype: g.Dtype,
	}
}

// Decompose implements bloq.Decomposable by reporting
// bloq.ErrAtomic.
func (g Join) Decompose() (*bloq.CompositeBloq, error) {
	return atomic(g)
}

// CallClassically implements classical.Bloq.
func (g Join) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	elems := vals["x"].Flat()
	bits := make([]uint8, len(elems))
	for i, e := range elems {
		bits[i] = uint8(e)
	}
	raw, err := g.Dtype.FromBits(bits)
	if err != nil {
		return nil, err
	}
	return classical.Vals{
		"x": classical.Scalar(raw),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g Join) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	inGrp := in["x"]
	outCxn := out["x"].One()
	result := make([]*tensor.Tensor, 0, g.Dtype.Bits)
	for i, cxn := range inGrp.Flat() {
		result = append(result, tensor.Eye2(
			tensor.Index{Cxn: outCxn, Bit: i},
			tensor.Index{Cxn: cxn}))
	}
	return result, nil
}
