//
// doc.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

// Package bloq implements a compositional quantum program model. A
// program is built from bloqs, self-contained units of computation
// ranging from primitive gates to full algorithms. Each bloq
// declares its data-flow interface as a Signature: an ordered list
// of named, typed registers. A register exists on the LEFT side of
// the bloq (consumed), on the RIGHT side (produced), or THRU (both).
// Register types come from the qdt package and shaped registers
// describe arrays of wires.
//
// Composite bloqs are directed acyclic graphs of bloq instances.
// The graph nodes are BloqInstance values and the edges are
// Connection values joining two Soquets, where a soquet names one
// wire endpoint of one instance. The composite's own interface
// appears in the graph as two virtual nodes: LeftDangle produces the
// soquets of the input registers and RightDangle consumes the
// soquets of the output registers.
//
// Composites are constructed with a Builder. The builder hands out
// soquets for the declared registers, threads them through added
// sub-bloqs, and binds the final soquets to the output registers:
//
//	bb := bloq.NewBuilder()
//	q, _ := bb.AddQAny("q", 1)
//	outs, err := bb.Add(gate, map[string]bloq.Soquets{
//	        "q": q,
//	})
//	if err != nil {
//	        ...
//	}
//	cb, err := bb.Finalize(map[string]bloq.Soquets{
//	        "q": outs["q"],
//	})
//
// Soquets obey a linear discipline: each one is produced exactly
// once and consumed exactly once. The builder rejects the operation
// that would violate the discipline and Finalize verifies the
// finished graph.
//
// The evaluation backends live in their own packages: package
// classical propagates classical values through a composite and
// package tensor contracts the composite as a tensor network. The
// backends discover bloq semantics through capability interfaces
// that bloqs implement implicitly. The primitive bloq library is in
// package bloqs.
package bloq
