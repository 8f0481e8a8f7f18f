//
// hadamard.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"math"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/qdt"
	"github.com/markkurossi/bloq/tensor"
)

// Hadamard is the Hadamard gate. It maps the basis states to equal
// superpositions and has no classical action.
type Hadamard struct{}

// Signature implements bloq.Bloq.
func (g Hadamard) Signature() bloq.Signature {
	return bloq.MustSignature(bloq.NewRegister("q", qdt.Bit()))
}

func (g Hadamard) String() string {
	return "H"
}

// Adjoint implements bloq.Adjointable.
func (g Hadamard) Adjoint() bloq.Bloq {
	return g
}

// Tensors implements tensor.Bloq.
func (g Hadamard) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	s := complex(1/math.Sqrt2, 0)
	t, err := tensor.FromUnitary([]complex128{
		s, s,
		s, -s,
	},
		[]tensor.Index{{Cxn: out["q"].One()}},
		[]tensor.Index{{Cxn: in["q"].One()}})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}
