//
// alloc.go
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

// Allocate produces a new zeroed register of the data type.
type Allocate struct {
	Dtype qdt.Info
}

// Signature implements bloq.Bloq.
func (g Allocate) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("x", g.Dtype).WithSide(bloq.SideRight))
}

func (g Allocate) String() string {
	return "Alloc"
}

// Adjoint implements bloq.Adjointable.
func (g Allocate) Adjoint() bloq.Bloq {
	return Free{
		Dtype: g.Dtype,
	}
}

// Decompose implements bloq.Decomposable by reporting
// bloq.ErrAtomic.
func (g Allocate) Decompose() (*bloq.CompositeBloq, error) {
	return atomic(g)
}

// CallClassically implements classical.Bloq.
func (g Allocate) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"x": classical.Scalar(0),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g Allocate) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return zeroTensors(out["x"].One(), g.Dtype.Bits)
}

// Free discards a register of the data type. The register must hold
// the value zero.
type Free struct {
	Dtype qdt.Info
}

// Signature implements bloq.Bloq.
func (g Free) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("x", g.Dtype).WithSide(bloq.SideLeft))
}

func (g Free) String() string {
	return "Free"
}

// Adjoint implements bloq.Adjointable.
func (g Free) Adjoint() bloq.Bloq {
	return Allocate{
		Dtype: g.Dtype,
	}
}

// Decompose implements bloq.Decomposable by reporting
// bloq.ErrAtomic.
func (g Free) Decompose() (*bloq.CompositeBloq, error) {
	return atomic(g)
}

// CallClassically implements classical.Bloq.
func (g Free) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	if v := vals["x"].Uint(); v != 0 {
		return nil, fmt.Errorf("freeing register with value %s",
			g.Dtype.Format(v))
	}
	return classical.Vals{}, nil
}

// Tensors implements tensor.Bloq.
func (g Free) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return zeroTensors(in["x"].One(), g.Dtype.Bits)
}

// zeroTensors creates the product state projecting every bit of the
// connection to zero.
func zeroTensors(cxn bloq.Connection, n int) ([]*tensor.Tensor, error) {
	result := make([]*tensor.Tensor, 0, n)
	for bit := 0; bit < n; bit++ {
		t, err := tensor.FromVector([]complex128{1, 0},
			[]tensor.Index{{Cxn: cxn, Bit: bit}})
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
