//
// tensor.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package tensor

import (
	"fmt"

	"github.com/markkurossi/bloq"
)

// Index labels one tensor leg: the bit Bit of the connection Cxn.
// Bit 0 is the most significant bit of the connection's data type.
// Index is comparable and usable as a map key.
type Index struct {
	Cxn bloq.Connection
	Bit int
}

func (i Index) String() string {
	return fmt.Sprintf("(%s)[%d]", i.Cxn, i.Bit)
}

// Tensor is a dense tensor over bit-valued legs. Every leg has
// dimension two so Data holds exactly 2^len(Inds) amplitudes in
// row-major order with Inds[0] as the most significant position.
type Tensor struct {
	Data []complex128
	Inds []Index
	Tags []string
}

// New creates a tensor and verifies that the data matches the legs
// and that the legs are distinct.
func New(data []complex128, inds []Index, tags ...string) (*Tensor, error) {
	if len(data) != 1<<len(inds) {
		return nil, fmt.Errorf("tensor with %d legs needs %d amplitudes, got %d",
			len(inds), 1<<len(inds), len(data))
	}
	seen := make(map[Index]bool)
	for _, ind := range inds {
		if seen[ind] {
			return nil, fmt.Errorf("duplicate tensor leg %s", ind)
		}
		seen[ind] = true
	}
	return &Tensor{
		Data: data,
		Inds: inds,
		Tags: tags,
	}, nil
}

// Eye2 creates an identity tensor wiring the leg in straight to the
// leg out.
func Eye2(out, in Index, tags ...string) *Tensor {
	return &Tensor{
		Data: []complex128{1, 0, 0, 1},
		Inds: []Index{out, in},
		Tags: tags,
	}
}

// FromUnitary creates a tensor from the row-major unitary matrix u
// mapping the in legs to the out legs. The matrix has 2^len(out)
// rows and 2^len(in) columns.
func FromUnitary(u []complex128, out, in []Index, tags ...string) (
	*Tensor, error) {
	return New(u, append(append([]Index(nil), out...), in...), tags...)
}

// FromVector creates a tensor from the state vector over the out
// legs.
func FromVector(state []complex128, out []Index, tags ...string) (
	*Tensor, error) {
	return New(state, append([]Index(nil), out...), tags...)
}

// NumLegs returns the number of tensor legs.
func (t *Tensor) NumLegs() int {
	return len(t.Inds)
}

// pos returns the position of the leg in the tensor.
func (t *Tensor) pos(ind Index) int {
	for i, l := range t.Inds {
		if l == ind {
			return i
		}
	}
	return -1
}

func (t *Tensor) String() string {
	if len(t.Tags) > 0 {
		return fmt.Sprintf("Tensor{%v, %d legs}", t.Tags, len(t.Inds))
	}
	return fmt.Sprintf("Tensor{%d legs}", len(t.Inds))
}

// permute reorders the tensor legs to the order inds and returns the
// permuted amplitudes. The inds must be a permutation of the
// tensor's legs.
func (t *Tensor) permute(inds []Index) ([]complex128, error) {
	n := len(t.Inds)
	if len(inds) != n {
		return nil, fmt.Errorf("permutation size %d, expected %d",
			len(inds), n)
	}
	perm := make([]int, n)
	for i, ind := range inds {
		p := t.pos(ind)
		if p < 0 {
			return nil, fmt.Errorf("unknown tensor leg %s", ind)
		}
		perm[i] = p
	}
	result := make([]complex128, len(t.Data))
	for dst := range result {
		src := 0
		for i, p := range perm {
			bit := (dst >> (n - 1 - i)) & 1
			src |= bit << (n - 1 - p)
		}
		result[dst] = t.Data[src]
	}
	return result, nil
}
