//
// cast.go
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

// Cast reinterprets the bits of a register in another data type of
// the same width.
type Cast struct {
	From qdt.Info
	To   qdt.Info
}

// NewCast creates a cast between the data types.
func NewCast(from, to qdt.Info) (Cast, error) {
	if err := from.Check(); err != nil {
		return Cast{}, err
	}
	if err := to.Check(); err != nil {
		return Cast{}, err
	}
	if from.Bits != to.Bits {
		return Cast{}, fmt.Errorf("cannot cast %s to %s: widths differ",
			from, to)
	}
	return Cast{
		From: from,
		To:   to,
	}, nil
}

// Signature implements bloq.Bloq.
func (g Cast) Signature() bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("x", g.From).WithSide(bloq.SideLeft),
		bloq.NewRegister("x", g.To).WithSide(bloq.SideRight))
}

func (g Cast) String() string {
	return fmt.Sprintf("Cast(%s)", g.To)
}

// Adjoint implements bloq.Adjointable.
func (g Cast) Adjoint() bloq.Bloq {
	return Cast{
		From: g.To,
		To:   g.From,
	}
}

// Decompose implements bloq.Decomposable by reporting
// bloq.ErrAtomic.
func (g Cast) Decompose() (*bloq.CompositeBloq, error) {
	return atomic(g)
}

// CallClassically implements classical.Bloq.
func (g Cast) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"x": classical.Scalar(g.To.Canonical(vals["x"].Uint())),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g Cast) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return wires(in["x"].One(), out["x"].One(), g.To.Bits), nil
}
