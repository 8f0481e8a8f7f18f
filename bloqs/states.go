//
// states.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"fmt"
	"math"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
	"github.com/markkurossi/bloq/qdt"
	"github.com/markkurossi/bloq/tensor"
)

// stateSig is the signature of the one-qubit states and effects.
func stateSig(side bloq.Side) bloq.Signature {
	return bloq.MustSignature(
		bloq.NewRegister("q", qdt.Bit()).WithSide(side))
}

// stateTensor creates the one-legged tensor of a state or effect.
func stateTensor(state []complex128, cxn bloq.Connection) (
	[]*tensor.Tensor, error) {

	t, err := tensor.FromVector(state, []tensor.Index{{Cxn: cxn}})
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{t}, nil
}

// ZeroState prepares a new qubit in the zero state.
type ZeroState struct{}

// Signature implements bloq.Bloq.
func (g ZeroState) Signature() bloq.Signature {
	return stateSig(bloq.SideRight)
}

func (g ZeroState) String() string {
	return "|0⟩"
}

// Adjoint implements bloq.Adjointable.
func (g ZeroState) Adjoint() bloq.Bloq {
	return ZeroEffect{}
}

// CallClassically implements classical.Bloq.
func (g ZeroState) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"q": classical.Scalar(0),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g ZeroState) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return stateTensor([]complex128{1, 0}, out["q"].One())
}

// OneState prepares a new qubit in the one state.
type OneState struct{}

// Signature implements bloq.Bloq.
func (g OneState) Signature() bloq.Signature {
	return stateSig(bloq.SideRight)
}

func (g OneState) String() string {
	return "|1⟩"
}

// Adjoint implements bloq.Adjointable.
func (g OneState) Adjoint() bloq.Bloq {
	return OneEffect{}
}

// CallClassically implements classical.Bloq.
func (g OneState) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	return classical.Vals{
		"q": classical.Scalar(1),
	}, nil
}

// Tensors implements tensor.Bloq.
func (g OneState) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return stateTensor([]complex128{0, 1}, out["q"].One())
}

// PlusState prepares a new qubit in the equal superposition. It has
// no classical action.
type PlusState struct{}

// Signature implements bloq.Bloq.
func (g PlusState) Signature() bloq.Signature {
	return stateSig(bloq.SideRight)
}

func (g PlusState) String() string {
	return "|+⟩"
}

// Adjoint implements bloq.Adjointable.
func (g PlusState) Adjoint() bloq.Bloq {
	return PlusEffect{}
}

// Tensors implements tensor.Bloq.
func (g PlusState) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	s := complex(1/math.Sqrt2, 0)
	return stateTensor([]complex128{s, s}, out["q"].One())
}

// ZeroEffect projects a qubit to the zero state and discards it.
type ZeroEffect struct{}

// Signature implements bloq.Bloq.
func (g ZeroEffect) Signature() bloq.Signature {
	return stateSig(bloq.SideLeft)
}

func (g ZeroEffect) String() string {
	return "⟨0|"
}

// Adjoint implements bloq.Adjointable.
func (g ZeroEffect) Adjoint() bloq.Bloq {
	return ZeroState{}
}

// CallClassically implements classical.Bloq.
func (g ZeroEffect) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	if v := vals["q"].Uint(); v != 0 {
		return nil, fmt.Errorf("cannot project value %d to ⟨0|", v)
	}
	return classical.Vals{}, nil
}

// Tensors implements tensor.Bloq.
func (g ZeroEffect) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return stateTensor([]complex128{1, 0}, in["q"].One())
}

// OneEffect projects a qubit to the one state and discards it.
type OneEffect struct{}

// Signature implements bloq.Bloq.
func (g OneEffect) Signature() bloq.Signature {
	return stateSig(bloq.SideLeft)
}

func (g OneEffect) String() string {
	return "⟨1|"
}

// Adjoint implements bloq.Adjointable.
func (g OneEffect) Adjoint() bloq.Bloq {
	return OneState{}
}

// CallClassically implements classical.Bloq.
func (g OneEffect) CallClassically(vals classical.Vals) (
	classical.Vals, error) {

	if v := vals["q"].Uint(); v != 1 {
		return nil, fmt.Errorf("cannot project value %d to ⟨1|", v)
	}
	return classical.Vals{}, nil
}

// Tensors implements tensor.Bloq.
func (g OneEffect) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	return stateTensor([]complex128{0, 1}, in["q"].One())
}

// PlusEffect projects a qubit to the equal superposition and
// discards it. It has no classical action.
type PlusEffect struct{}

// Signature implements bloq.Bloq.
func (g PlusEffect) Signature() bloq.Signature {
	return stateSig(bloq.SideLeft)
}

func (g PlusEffect) String() string {
	return "⟨+|"
}

// Adjoint implements bloq.Adjointable.
func (g PlusEffect) Adjoint() bloq.Bloq {
	return PlusState{}
}

// Tensors implements tensor.Bloq.
func (g PlusEffect) Tensors(in, out map[string]*tensor.ConnGroup) (
	[]*tensor.Tensor, error) {

	s := complex(1/math.Sqrt2, 0)
	return stateTensor([]complex128{s, s}, in["q"].One())
}
