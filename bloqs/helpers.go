//
// helpers.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"fmt"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/qdt"
)

// atomic reports the decompose error of an intrinsically indivisible
// bloq.
func atomic(b bloq.Bloq) (*bloq.CompositeBloq, error) {
	return nil, fmt.Errorf("%s: %w", b, bloq.ErrAtomic)
}

// SplitSoq splits the soquet holding a value of the data type into
// its bits.
func SplitSoq(bb *bloq.Builder, dt qdt.Info, x bloq.Soquet) (
	bloq.Soquets, error) {

	s, err := NewSplit(dt)
	if err != nil {
		return bloq.Soquets{}, err
	}
	outs, err := bb.Add(s, map[string]bloq.Soquets{
		"x": bloq.Single(x),
	})
	if err != nil {
		return bloq.Soquets{}, err
	}
	return outs["x"], nil
}

// JoinSoqs joins the bit soquets into a single soquet of the data
// type.
func JoinSoqs(bb *bloq.Builder, dt qdt.Info, bits bloq.Soquets) (
	bloq.Soquet, error) {

	j, err := NewJoin(dt)
	if err != nil {
		return bloq.Soquet{}, err
	}
	outs, err := bb.Add(j, map[string]bloq.Soquets{
		"x": bits,
	})
	if err != nil {
		return bloq.Soquet{}, err
	}
	return outs["x"].One(), nil
}

// AllocateSoq allocates a new zeroed register of the data type and
// returns its soquet.
func AllocateSoq(bb *bloq.Builder, dt qdt.Info) (bloq.Soquet, error) {
	outs, err := bb.Add(Allocate{Dtype: dt}, nil)
	if err != nil {
		return bloq.Soquet{}, err
	}
	return outs["x"].One(), nil
}

// FreeSoq discards the zeroed register held by the soquet.
func FreeSoq(bb *bloq.Builder, dt qdt.Info, x bloq.Soquet) error {
	_, err := bb.Add(Free{Dtype: dt}, map[string]bloq.Soquets{
		"x": bloq.Single(x),
	})
	return err
}

// PartitionSoqs partitions the soquet into the part registers of p.
// The partition direction of p is used regardless of its adjoint
// flag. The result maps each part register name to its soquets in
// element order.
func PartitionSoqs(bb *bloq.Builder, p *Partition, x bloq.Soquet) (
	map[string]bloq.Soquets, error) {

	if p.adjoint {
		p = p.Adjoint().(*Partition)
	}
	return bb.Add(p, map[string]bloq.Soquets{
		"x": bloq.Single(x),
	})
}
