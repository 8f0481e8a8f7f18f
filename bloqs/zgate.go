//
// zgate.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/qdt"
	"github.com/markkurossi/bloq/tensor"
)

// ZGate is the Pauli Z gate. It flips the phase of the one state and
// therefore has no classical action.
type ZGate struct{}

// Signature implements bloq.Bloq.
func (g ZGate) Signature() bloq.Signature {
	return bloq.MustSignature(bloq.NewRegister("q", qdt.Bit()))
}

func (g ZGate) String() string {
	return "Z"
}

// Adjoint implements bloq.Adjointable.
func (g ZGate) Adjoint() bloq.Bloq {
	return g
}

// Tensors implements tensor.Bloq.
func (g ZGate) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	t, err := tensor.FromUnitary([]complex128{
		1, 0,
		0, -1,
	},
		[]tensor.Index{{Cxn: out["q"].One()}},
		[]tensor.Index{{Cxn: in["q"].One()}})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}
