//
// toffoli.go
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

// Toffoli is the doubly-controlled NOT gate: it flips target when
// both control qubits are set.
type Toffoli struct{}

// Signature implements bloq.Bloq.
func (g Toffoli) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewArrayRegister("ctrl", qdt.Bit(), 2),
		bloq.NewRegister("target", qdt.Bit()))
}

func (g Toffoli) String() string {
	return "Toffoli"
}

// Adjoint implements bloq.Adjointable.
func (g Toffoli) Adjoint() bloq.Bloq {
	return g
}

// CallClassically implements classical.Bloq.
func (g Toffoli) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	ctrl := vals["ctrl"]
	target := vals["target"].Uint()
	return classical.Vals{
		"ctrl":   ctrl,
		"target": classical.Scalar(target ^ (ctrl.At(0) & ctrl.At(1))),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g Toffoli) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	// The basis index is c0c1t; the states 110 and 111 swap.
	u := make([]complex128, 64)
	for col := 0; col < 8; col++ {
		row := col
		if col&6 == 6 {
			row = col ^ 1
		}
		u[row*8+col] = 1
	}
	t, err := tensor.FromUnitary(u,
		[]tensor.Index{
			{Cxn: out["ctrl"].At(0)},
			{Cxn: out["ctrl"].At(1)},
			{Cxn: out["target"].One()},
		},
		[]tensor.Index{
			{Cxn: in["ctrl"].At(0)},
			{Cxn: in["ctrl"].At(1)},
			{Cxn: in["target"].One()},
		})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}
