//
// xork.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"fmt"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
	"github.com/markkurossi/bloq/qdt"
	"github.com/markkurossi/bloq/tensor"
)

// XorK XORs the constant K into the register x. The constant is a
// raw value of the register's data type.
type XorK struct {
	Dtype qdt.Info
	K     uint64
}

// NewXorK creates a XorK gate for the data type. It verifies that
// the constant is inside the type's domain.
func NewXorK(dt qdt.Info, k uint64) (XorK, error) {
	if err := dt.Check(); err != nil {
		return XorK{}, err
	}
	if err := dt.Validate(k); err != nil {
		return XorK{}, err
	}
	return XorK{
		Dtype: dt,
		K:     k,
	}, nil
}

// Signature implements bloq.Bloq.
func (g XorK) Signature() bloq.Signature {
	return bloq.MustSignature(bloq.NewRegister("x", g.Dtype))
}

func (g XorK) String() string {
	return fmt.Sprintf("Xor(%s)", g.Dtype.Format(g.K))
}

// Adjoint implements bloq.Adjointable.
func (g XorK) Adjoint() bloq.Bloq {
	return g
}

// CallClassically implements classical.Bloq.
func (g XorK) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"x": classical.Scalar(g.Dtype.Canonical(vals["x"].Uint() ^ g.K)),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g XorK) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	inCxn := in["x"].One()
	outCxn := out["x"].One()

	// XOR with a constant factorizes over the bits: each set bit of
	// the constant flips its wire, each clear bit passes through.
	bits, err := g.Dtype.ToBits(g.K)
	if err != nil {
		return nil, err
	}
	result := make([]*tensor.Tensor, 0, len(bits))
	for i, b := range bits {
		outIdx := tensor.Index{Cxn: outCxn, Bit: i}
		inIdx := tensor.Index{Cxn: inCxn, Bit: i}
		if b == 0 {
			result = append(result, tensor.Eye2(outIdx, inIdx))
			continue
		}
		t, err := tensor.New([]complex128{
			0, 1,
			1, 0,
		}, []tensor.Index{outIdx, inIdx})
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
