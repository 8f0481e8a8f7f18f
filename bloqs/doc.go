//
// doc.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

// Package bloqs implements the standard library of bloqs: basic
// one- and two-qubit gates, constant states and effects, and the
// bookkeeping bloqs that split, join, partition, and cast registers
// without acting on their data.
//
// The gates define their classical action for the classical
// simulator and their tensors for the tensor-network backend where
// the operation supports them; a gate without a classical action,
// like Hadamard, is simulated only through tensors.
package bloqs
