//
// doc.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

// Package tensor contracts bloqs as tensor networks. A bloq
// participates by implementing the package's Bloq interface and
// returning its factorization as labeled tensors; bloqs without
// tensors are flattened through their decomposition.
//
// Tensor legs are bit-level: one leg per connection bit, each of
// dimension two, labeled with an Index naming the connection and the
// bit position inside it. Contracting the network of a composite
// yields its unitary matrix, or its state vector when the composite
// has no input registers. Basis states are indexed in big-endian
// register order: the first register of the signature gives the most
// significant bits.
package tensor
