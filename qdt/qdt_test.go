//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package qdt

import (
	"testing"
)

func TestUndefined(t *testing.T) {
	undef := Info{}
	if !undef.Undefined() {
		t.Errorf("undef is not undefined")
	}
	if err := undef.Check(); err == nil {
		t.Errorf("undefined type passed Check")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		info Info
		str  string
	}{
		{Bit(), "bit"},
		{Any(37), "any37"},
		{UInt(8), "u8"},
		{Int(6), "i6"},
		{Fxp(8, 4), "fxp8.4"},
	}
	for _, test := range tests {
		if got := test.info.String(); got != test.str {
			t.Errorf("%v.String()=%s, expected %s", test.info, got, test.str)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		info Info
		raw  uint64
		ok   bool
	}{
		{Bit(), 0, true},
		{Bit(), 1, true},
		{Bit(), 2, false},
		{UInt(5), 31, true},
		{UInt(5), 32, false},
		{Any(64), ^uint64(0), true},
		{Int(6), uint64(31), true},
		{Int(6), raw(-32), true},
		{Int(6), uint64(32), false},
		{Int(6), raw(-33), false},
		{Int(64), raw(-1), true},
		{Fxp(8, 4), 255, true},
		{Fxp(8, 4), 256, false},
	}
	for _, test := range tests {
		err := test.info.Validate(test.raw)
		if (err == nil) != test.ok {
			t.Errorf("%s.Validate(%d): err=%v, expected ok=%v",
				test.info, test.raw, err, test.ok)
		}
	}
}

func TestBitsRoundTrip(t *testing.T) {
	types := []Info{Bit(), Any(3), UInt(8), Fxp(6, 2)}
	for _, info := range types {
		for v := uint64(0); v < info.NumValues(); v++ {
			bits, err := info.ToBits(v)
			if err != nil {
				t.Fatalf("%s.ToBits(%d): %s", info, v, err)
			}
			if len(bits) != info.Bits {
				t.Fatalf("%s.ToBits(%d): %d bits, expected %d",
					info, v, len(bits), info.Bits)
			}
			back, err := info.FromBits(bits)
			if err != nil {
				t.Fatalf("%s.FromBits: %s", info, err)
			}
			if back != v {
				t.Errorf("%s: round trip %d => %v => %d", info, v, bits, back)
			}
		}
	}
}

func TestSignedBits(t *testing.T) {
	info := Int(6)
	tests := []struct {
		v    int64
		bits []uint8
	}{
		{31, []uint8{0, 1, 1, 1, 1, 1}},
		{-1, []uint8{1, 1, 1, 1, 1, 1}},
		{-32, []uint8{1, 0, 0, 0, 0, 0}},
		{0, []uint8{0, 0, 0, 0, 0, 0}},
	}
	for _, test := range tests {
		bits, err := info.ToBits(raw(test.v))
		if err != nil {
			t.Fatalf("ToBits(%d): %s", test.v, err)
		}
		if !bitsEqual(bits, test.bits) {
			t.Errorf("ToBits(%d)=%v, expected %v", test.v, bits, test.bits)
		}
		back, err := info.FromBits(bits)
		if err != nil {
			t.Fatalf("FromBits(%v): %s", bits, err)
		}
		if int64(back) != test.v {
			t.Errorf("FromBits(%v)=%d, expected %d", bits, int64(back), test.v)
		}
	}
}

func raw(v int64) uint64 {
	return uint64(v)
}

func bitsEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
