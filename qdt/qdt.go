//
// qdt.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

// Package qdt implements the quantum data types of the bloq system. A
// data type gives a register its bit width and the numeric
// interpretation of the values it carries: opaque bit strings,
// unsigned and two's-complement signed integers, and unsigned
// fixed-point numbers.
//
// Classical values are passed around as full-width two's-complement
// bit patterns in uint64 variables. The data type validates that a
// pattern is inside the type's domain and converts patterns to and
// from big-endian bit arrays.
package qdt

import (
	"fmt"
)

// Kind specifies a data type kind.
type Kind int8

// Data type kinds.
const (
	KUndefined Kind = iota
	KBit
	KAny
	KUInt
	KInt
	KFxp
)

// Kinds define the data type kinds and their names.
var Kinds = map[string]Kind{
	"<Undefined>": KUndefined,
	"bit":         KBit,
	"any":         KAny,
	"uint":        KUInt,
	"int":         KInt,
	"fxp":         KFxp,
}

var shortKinds = map[Kind]string{
	KUndefined: "?",
	KBit:       "bit",
	KAny:       "any",
	KUInt:      "u",
	KInt:       "i",
	KFxp:       "fxp",
}

func (k Kind) String() string {
	for name, kind := range Kinds {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("{Kind %d}", k)
}

// Info specifies a register data type: its kind, width in bits, and
// for fixed-point types the number of fractional bits. Info is a
// comparable value type.
type Info struct {
	Kind Kind
	Bits int
	Frac int
}

// Undefined defines type info for undefined types.
var Undefined = Info{
	Kind: KUndefined,
}

// Bit returns the single-bit data type.
func Bit() Info {
	return Info{
		Kind: KBit,
		Bits: 1,
	}
}

// Any returns an opaque n-bit data type without numeric
// interpretation beyond an unsigned bit pattern.
func Any(n int) Info {
	return Info{
		Kind: KAny,
		Bits: n,
	}
}

// UInt returns an n-bit unsigned integer data type.
func UInt(n int) Info {
	return Info{
		Kind: KUInt,
		Bits: n,
	}
}

// Int returns an n-bit two's-complement signed integer data type.
func Int(n int) Info {
	return Info{
		Kind: KInt,
		Bits: n,
	}
}

// Fxp returns an n-bit unsigned fixed-point data type with frac
// fractional bits.
func Fxp(n, frac int) Info {
	return Info{
		Kind: KFxp,
		Bits: n,
		Frac: frac,
	}
}

// Undefined tests if the type is undefined.
func (t Info) Undefined() bool {
	return t.Kind == KUndefined
}

// Signed tests if the type interprets values as two's-complement
// signed integers.
func (t Info) Signed() bool {
	return t.Kind == KInt
}

func (t Info) String() string {
	switch t.Kind {
	case KBit:
		return "bit"
	case KFxp:
		return fmt.Sprintf("%s%d.%d", shortKinds[t.Kind], t.Bits, t.Frac)
	case KUndefined:
		return shortKinds[t.Kind]
	default:
		return fmt.Sprintf("%s%d", shortKinds[t.Kind], t.Bits)
	}
}

// Check verifies that the type is well formed: a known kind, a
// positive bit width, bit types exactly one bit wide, and fixed-point
// fractional bits inside the total width.
func (t Info) Check() error {
	switch t.Kind {
	case KBit:
		if t.Bits != 1 {
			return fmt.Errorf("qdt: bit type must be 1 bit, got %d", t.Bits)
		}
	case KAny, KUInt, KInt:
		if t.Bits < 1 || t.Bits > 64 {
			return fmt.Errorf("qdt: %s: bit width %d out of range [1,64]",
				t.Kind, t.Bits)
		}
	case KFxp:
		if t.Bits < 1 || t.Bits > 64 {
			return fmt.Errorf("qdt: %s: bit width %d out of range [1,64]",
				t.Kind, t.Bits)
		}
		if t.Frac < 0 || t.Frac > t.Bits {
			return fmt.Errorf("qdt: fxp%d.%d: fractional bits out of range",
				t.Bits, t.Frac)
		}
	default:
		return fmt.Errorf("qdt: undefined type")
	}
	return nil
}

// NumValues returns the number of distinct values of the type. It is
// valid for types narrower than 64 bits.
func (t Info) NumValues() uint64 {
	if t.Bits >= 64 {
		return 0
	}
	return 1 << t.Bits
}

// Validate checks that the raw full-width two's-complement pattern is
// inside the type's domain.
func (t Info) Validate(raw uint64) error {
	switch t.Kind {
	case KBit:
		if raw > 1 {
			return fmt.Errorf("bad bit value %d", raw)
		}

	case KAny, KUInt, KFxp:
		if t.Bits < 64 && raw >= 1<<t.Bits {
			return fmt.Errorf("value %d out of range for %s", raw, t)
		}

	case KInt:
		v := int64(raw)
		if t.Bits < 64 {
			bound := int64(1) << (t.Bits - 1)
			if v < -bound || v >= bound {
				return fmt.Errorf("value %d out of range for %s", v, t)
			}
		}

	default:
		return fmt.Errorf("qdt: undefined type")
	}
	return nil
}

// ToBits converts the raw value to its big-endian bit array of
// exactly Bits elements. The raw value must be inside the type's
// domain.
func (t Info) ToBits(raw uint64) ([]uint8, error) {
	if err := t.Validate(raw); err != nil {
		return nil, err
	}
	bits := make([]uint8, t.Bits)
	for i := 0; i < t.Bits; i++ {
		bits[i] = uint8((raw >> (t.Bits - 1 - i)) & 1)
	}
	return bits, nil
}

// FromBits converts a big-endian bit array of exactly Bits elements
// back to a raw full-width two's-complement value. This is the exact
// inverse of ToBits.
func (t Info) FromBits(bits []uint8) (uint64, error) {
	if len(bits) != t.Bits {
		return 0, fmt.Errorf("%s: invalid bit count %d, expected %d",
			t, len(bits), t.Bits)
	}
	var raw uint64
	for i, b := range bits {
		if b > 1 {
			return 0, fmt.Errorf("bad bit value %d", b)
		}
		raw |= uint64(b) << (t.Bits - 1 - i)
	}
	if t.Signed() && t.Bits < 64 && bits[0] == 1 {
		// Sign-extend to the full storage width.
		raw |= ^uint64(0) << t.Bits
	}
	return raw, nil
}

// Canonical masks the raw value to the type's width and sign-extends
// signed values back to the full storage width. Arithmetic on raw
// patterns is run through Canonical so that the result is inside the
// type's domain again.
func (t Info) Canonical(raw uint64) uint64 {
	if t.Bits >= 64 {
		return raw
	}
	raw &= 1<<t.Bits - 1
	if t.Signed() && raw>>(t.Bits-1) == 1 {
		raw |= ^uint64(0) << t.Bits
	}
	return raw
}

// Format renders the raw value according to the type's numeric
// interpretation.
func (t Info) Format(raw uint64) string {
	switch t.Kind {
	case KInt:
		return fmt.Sprintf("%d", int64(raw))
	case KFxp:
		return fmt.Sprintf("%g", float64(raw)/float64(uint64(1)<<t.Frac))
	default:
		return fmt.Sprintf("%d", raw)
	}
}

// Domain returns the values of the type in enumeration order:
// unsigned types count up from zero and signed types from the most
// negative value. Domain is valid for types narrower than 64 bits.
func (t Info) Domain() []uint64 {
	count := t.NumValues()
	if count == 0 {
		return nil
	}
	result := make([]uint64, count)
	if t.Signed() {
		v := -(int64(1) << (t.Bits - 1))
		for i := range result {
			result[i] = uint64(v)
			v++
		}
	} else {
		for i := range result {
			result[i] = uint64(i)
		}
	}
	return result
}
