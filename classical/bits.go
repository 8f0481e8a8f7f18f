//
// bits.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package classical

import (
	"fmt"
)

// IntToBits converts the value to its big-endian two's-complement
// bit array of exactly w elements. Values outside the w-bit range
// wrap around. The width w must be from 1 to 64.
func IntToBits(v int64, w int) []uint8 {
	if w < 1 || w > 64 {
		panic(fmt.Sprintf("bit width %d out of range [1,64]", w))
	}
	bits := make([]uint8, w)
	raw := uint64(v)
	for i := 0; i < w; i++ {
		bits[i] = uint8((raw >> (w - 1 - i)) & 1)
	}
	return bits
}

// IntsToBits converts the values to their big-endian bit arrays of w
// elements each.
func IntsToBits(vs []int64, w int) [][]uint8 {
	result := make([][]uint8, len(vs))
	for i, v := range vs {
		result[i] = IntToBits(v, w)
	}
	return result
}

// BitsToUint converts the big-endian bit array to an unsigned
// integer. The array can hold at most 64 bits.
func BitsToUint(bits []uint8) uint64 {
	if len(bits) > 64 {
		panic(fmt.Sprintf("bit count %d out of range [0,64]", len(bits)))
	}
	var result uint64
	for _, b := range bits {
		result = result<<1 | uint64(b&1)
	}
	return result
}

// BitsToUints converts the big-endian bit arrays to unsigned
// integers.
func BitsToUints(bitss [][]uint8) []uint64 {
	result := make([]uint64, len(bitss))
	for i, bits := range bitss {
		result[i] = BitsToUint(bits)
	}
	return result
}

// BitsToInt converts the big-endian two's-complement bit array to a
// signed integer.
func BitsToInt(bits []uint8) int64 {
	raw := BitsToUint(bits)
	if len(bits) > 0 && len(bits) < 64 && bits[0]&1 == 1 {
		raw |= ^uint64(0) << len(bits)
	}
	return int64(raw)
}
