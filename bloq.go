//
// bloq.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"errors"
	"fmt"
)

// Bloq is the unit of computation. A bloq declares its data-flow
// interface as a signature and identifies itself with a short,
// stable name. Bloqs are immutable values: all configuration happens
// in their constructors.
//
// Optional behavior is layered on with capability interfaces:
// Decomposable for bloqs that can express themselves as a composite
// of simpler bloqs, and Adjointable for bloqs that know their
// inverse. The evaluation backends declare their own capability
// interfaces the same way.
type Bloq interface {
	// Signature returns the data-flow interface of the bloq.
	Signature() Signature

	// String returns the name of the bloq.
	String() string
}

// Decomposable is a bloq that can define its implementation as a
// composite of sub-bloqs.
type Decomposable interface {
	Bloq

	// Decompose returns the composite implementing the bloq. The
	// composite's signature matches the bloq's signature.
	Decompose() (*CompositeBloq, error)
}

// Adjointable is a bloq that knows its own inverse.
type Adjointable interface {
	Bloq

	// Adjoint returns the inverse of the bloq.
	Adjoint() Bloq
}

// Decompose returns the composite implementation of the bloq. It
// reports an error wrapping errors.ErrUnsupported if the bloq does
// not define a decomposition, and ErrAtomic if the bloq is
// intrinsically indivisible.
func Decompose(b Bloq) (*CompositeBloq, error) {
	d, ok := b.(Decomposable)
	if !ok {
		return nil, fmt.Errorf("%s does not define a decomposition: %w",
			b, errors.ErrUnsupported)
	}
	return d.Decompose()
}

// AdjointOf returns the inverse of the bloq or an error wrapping
// errors.ErrUnsupported if the bloq does not define one.
func AdjointOf(b Bloq) (Bloq, error) {
	a, ok := b.(Adjointable)
	if !ok {
		return nil, fmt.Errorf("%s does not define an adjoint: %w",
			b, errors.ErrUnsupported)
	}
	return a.Adjoint(), nil
}

// AsComposite wraps the bloq into a single-instance composite with
// the same signature. If the bloq already is a composite it is
// returned as-is.
func AsComposite(b Bloq) (*CompositeBloq, error) {
	if cb, ok := b.(*CompositeBloq); ok {
		return cb, nil
	}
	bb := NewBuilder()

	ins := make(map[string]Soquets)
	for _, reg := range b.Signature().All() {
		soqs, err := bb.AddRegister(reg)
		if err != nil {
			return nil, err
		}
		if reg.Side.IsLeft() {
			ins[reg.Name] = soqs
		}
	}
	outs, err := bb.Add(b, ins)
	if err != nil {
		return nil, err
	}
	return bb.Finalize(outs)
}
