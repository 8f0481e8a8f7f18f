//
// xgate.go
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

// XGate is the Pauli X gate: it flips the qubit q.
type XGate struct{}

// Signature implements bloq.Bloq.
func (g XGate) Signature() bloq.Signature {
	return bloq.MustSignature(bloq.NewRegister("q", qdt.Bit()))
}

func (g XGate) String() string {
	return "X"
}

// Adjoint implements bloq.Adjointable.
func (g XGate) Adjoint() bloq.Bloq {
	return g
}

// CallClassically implements classical.Bloq.
func (g XGate) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"q": classical.Scalar(vals["q"].Uint() ^ 1),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g XGate) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	t, err := tensor.FromUnitary([]complex128{
		0, 1,
		1, 0,
	},
		[]tensor.Index{{Cxn: out["q"].One()}},
		[]tensor.Index{{Cxn: in["q"].One()}})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}
