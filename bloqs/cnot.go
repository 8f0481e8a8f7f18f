//
// cnot.go
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

// CNOT is the controlled NOT gate: it flips target when ctrl is set.
type CNOT struct{}

// Signature implements bloq.Bloq.
func (g CNOT) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("ctrl", qdt.Bit()),
		bloq.NewRegister("target", qdt.Bit()))
}

func (g CNOT) String() string {
	return "CNOT"
}

// Adjoint implements bloq.Adjointable.
func (g CNOT) Adjoint() bloq.Bloq {
	return g
}

// CallClassically implements classical.Bloq.
func (g CNOT) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	ctrl := vals["ctrl"].Uint()
	target := vals["target"].Uint()
	return classical.Vals{
		"ctrl":   classical.Scalar(ctrl),
		"target": classical.Scalar(ctrl ^ target),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g CNOT) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	t, err := tensor.FromUnitary([]complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	},
		[]tensor.Index{
			{Cxn: out["ctrl"].One()},
			{Cxn: out["target"].One()},
		},
		[]tensor.Index{
			{Cxn: in["ctrl"].One()},
			{Cxn: in["target"].One()},
		})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}
