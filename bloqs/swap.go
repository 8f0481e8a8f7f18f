//
// swap.go
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

// Swap exchanges the qubits x and y.
type Swap struct{}

// Signature implements bloq.Bloq.
func (g Swap) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("x", qdt.Bit()),
		bloq.NewRegister("y", qdt.Bit()))
}

func (g Swap) String() string {
	return "Swap"
}

// Adjoint implements bloq.Adjointable.
func (g Swap) Adjoint() bloq.Bloq {
	return g
}

// CallClassically implements classical.Bloq.
func (g Swap) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"x": vals["y"],
		"y": vals["x"],
	}, nil
}

// Tensors implements tensor.Bloq.
func (g Swap) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	t, err := tensor.FromUnitary([]complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	},
		[]tensor.Index{
			{Cxn: out["x"].One()},
			{Cxn: out["y"].One()},
		},
		[]tensor.Index{
			{Cxn: in["x"].One()},
			{Cxn: in["y"].One()},
		})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}
