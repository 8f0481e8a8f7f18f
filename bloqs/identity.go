//
// identity.go
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

// Identity is the identity gate over an n-bit register.
type Identity struct {
	N int
}

// Signature implements bloq.Bloq.
func (g Identity) Signature() bloq.Signature {
	return bloq.MustSignature(bloq.NewRegister("q", qdt.Any(g.N)))
}

func (g Identity) String() string {
	return "I"
}

// Adjoint implements bloq.Adjointable.
func (g Identity) Adjoint() bloq.Bloq {
	return g
}

// CallClassically implements classical.Bloq.
func (g Identity) CallClassically(vals classical.Vals) (
	classical.Vals, error) {
	return vals, nil
}

// Tensors implements tensor.Bloq.
func (g Identity) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return wires(in["q"].One(), out["q"].One(), g.N), nil
}

// wires creates identity tensors connecting the n bits of the in
// connection to the same bits of the out connection.
func wires(in, out bloq.Connection, n int) []*tensor.Tensor {
	result := make([]*tensor.Tensor, 0, n)
	for bit := 0; bit < n; bit++ {
		result = append(result, tensor.Eye2(
			tensor.Index{Cxn: out, Bit: bit},
			tensor.Index{Cxn: in, Bit: bit}))
	}
	return result
}
