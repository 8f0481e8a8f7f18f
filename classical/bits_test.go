//
// bits_test.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package classical

import (
	"testing"
)

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

func TestIntToBits(t *testing.T) {
	tests := []struct {
		v        int64
		w        int
		expected []uint8
	}{
		{0, 1, []uint8{0}},
		{1, 1, []uint8{1}},
		{2, 8, []uint8{0, 0, 0, 0, 0, 0, 1, 0}},
		{255, 8, []uint8{1, 1, 1, 1, 1, 1, 1, 1}},
		{31, 6, []uint8{0, 1, 1, 1, 1, 1}},
		{-1, 6, []uint8{1, 1, 1, 1, 1, 1}},
		{-32, 6, []uint8{1, 0, 0, 0, 0, 0}},
	}
	for _, test := range tests {
		got := IntToBits(test.v, test.w)
		if !bitsEqual(got, test.expected) {
			t.Errorf("IntToBits(%d, %d) = %v, expected %v",
				test.v, test.w, got, test.expected)
		}
	}
}

func TestIntsToBits(t *testing.T) {
	got := IntsToBits([]int64{31, -1}, 6)
	expected := [][]uint8{
		{0, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
	}
	if len(got) != len(expected) {
		t.Fatalf("got %d rows", len(got))
	}
	for i := range expected {
		if !bitsEqual(got[i], expected[i]) {
			t.Errorf("row %d: got %v, expected %v",
				i, got[i], expected[i])
		}
	}
}

func TestBitsToUint(t *testing.T) {
	tests := []struct {
		bits     []uint8
		expected uint64
	}{
		{[]uint8{}, 0},
		{[]uint8{1}, 1},
		{[]uint8{0, 0, 0, 0, 0, 0, 1, 0}, 2},
		{[]uint8{1, 1, 1, 1, 1, 1}, 63},
		{[]uint8{1, 0, 0, 0, 0, 0}, 32},
	}
	for _, test := range tests {
		got := BitsToUint(test.bits)
		if got != test.expected {
			t.Errorf("BitsToUint(%v) = %d, expected %d",
				test.bits, got, test.expected)
		}
	}
}

func TestBitsToInt(t *testing.T) {
	tests := []struct {
		bits     []uint8
		expected int64
	}{
		{[]uint8{0, 1, 1, 1, 1, 1}, 31},
		{[]uint8{1, 1, 1, 1, 1, 1}, -1},
		{[]uint8{1, 0, 0, 0, 0, 0}, -32},
		{[]uint8{0}, 0},
	}
	for _, test := range tests {
		got := BitsToInt(test.bits)
		if got != test.expected {
			t.Errorf("BitsToInt(%v) = %d, expected %d",
				test.bits, got, test.expected)
		}
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for w := 1; w <= 10; w++ {
		for v := uint64(0); v < 1<<w; v++ {
			bits := IntToBits(int64(v), w)
			if BitsToUint(bits) != v {
				t.Fatalf("w=%d v=%d: round trip failed", w, v)
			}
		}
	}
	got := BitsToUints(IntsToBits([]int64{31, -1}, 6))
	if len(got) != 2 || got[0] != 31 || got[1] != 63 {
		t.Errorf("BitsToUints: %v", got)
	}
}
