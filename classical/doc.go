//
// doc.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

// Package classical propagates classical values through bloqs. A
// bloq participates in classical simulation by implementing the
// package's Bloq interface; bloqs without a classical action are
// simulated through their decomposition.
//
// Values are full-width two's-complement bit patterns wrapped into
// the Value type, either as scalars or as shaped arrays matching
// shaped registers. All values are validated against the register
// data types on the way into and out of every bloq.
//
// The package also derives complete classical truth tables of small
// bloqs and renders them as plain text or as tables.
package classical
