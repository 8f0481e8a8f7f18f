//
// contract.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package tensor

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/markkurossi/bloq"
)

// sharedLegs counts the legs the tensors share.
func sharedLegs(a, b *Tensor) int {
	count := 0
	for _, ind := range a.Inds {
		if b.pos(ind) >= 0 {
			count++
		}
	}
	return count
}

// contractPair contracts the tensors over their shared legs. The
// shared legs are summed over and the result keeps the free legs of
// a followed by the free legs of b. Tensors without shared legs
// combine into their outer product.
func contractPair(a, b *Tensor) (*Tensor, error) {
	var shared, freeA, freeB []Index
	for _, ind := range a.Inds {
		if b.pos(ind) >= 0 {
			shared = append(shared, ind)
		} else {
			freeA = append(freeA, ind)
		}
	}
	for _, ind := range b.Inds {
		if a.pos(ind) < 0 {
			freeB = append(freeB, ind)
		}
	}

	permA := make([]Index, 0, len(a.Inds))
	permA = append(permA, freeA...)
	permA = append(permA, shared...)
	da, err := a.permute(permA)
	if err != nil {
		return nil, err
	}
	permB := make([]Index, 0, len(b.Inds))
	permB = append(permB, shared...)
	permB = append(permB, freeB...)
	db, err := b.permute(permB)
	if err != nil {
		return nil, err
	}

	ra := 1 << len(freeA)
	k := 1 << len(shared)
	cb := 1 << len(freeB)

	var mc mat.CDense
	mc.Mul(mat.NewCDense(ra, k, da), mat.NewCDense(k, cb, db))

	data := make([]complex128, ra*cb)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			data[i*cb+j] = mc.At(i, j)
		}
	}
	inds := make([]Index, 0, len(freeA)+len(freeB))
	inds = append(inds, freeA...)
	inds = append(inds, freeB...)

	tags := make([]string, 0, len(a.Tags)+len(b.Tags))
	tags = append(tags, a.Tags...)
	tags = append(tags, b.Tags...)

	return New(data, inds, tags...)
}

// Contract contracts the network into a single tensor over the
// boundary legs. The order is greedy: of the tensor pairs sharing a
// leg, the pair leaving the smallest intermediate tensor goes first.
// Disconnected parts combine as outer products.
func (n *Network) Contract() (*Tensor, error) {
	if len(n.tensors) == 0 {
		return &Tensor{Data: []complex128{1}}, nil
	}
	log.Debugf("contracting network of %d tensors", len(n.tensors))
	tensors := append([]*Tensor(nil), n.tensors...)
	for len(tensors) > 1 {
		ai, bi, best := -1, -1, 0
		for i := 0; i < len(tensors); i++ {
			for j := i + 1; j < len(tensors); j++ {
				shared := sharedLegs(tensors[i], tensors[j])
				if shared == 0 {
					continue
				}
				legs := len(tensors[i].Inds) + len(tensors[j].Inds) -
					2*shared
				if ai < 0 || legs < best {
					ai, bi, best = i, j, legs
				}
			}
		}
		if ai < 0 {
			ai, bi = 0, 1
		}
		t, err := contractPair(tensors[ai], tensors[bi])
		if err != nil {
			return nil, err
		}
		var next []*Tensor
		for i, old := range tensors {
			if i != ai && i != bi {
				next = append(next, old)
			}
		}
		tensors = append(next, t)
	}
	return tensors[0], nil
}

// Matrix contracts the network and shapes the result into a matrix
// from the input boundary to the output boundary: the rows follow
// the output legs and the columns the input legs, both in big-endian
// signature order. A leg on both boundaries describes a wire passing
// straight through the composite and contributes its identity.
func (n *Network) Matrix() (*mat.CDense, error) {
	t, err := n.Contract()
	if err != nil {
		return nil, err
	}

	boundary := make(map[Index]bool)
	for _, ind := range n.rows {
		boundary[ind] = true
	}
	for _, ind := range n.cols {
		boundary[ind] = true
	}
	for _, ind := range t.Inds {
		if !boundary[ind] {
			return nil, fmt.Errorf("internal leg %s not contracted", ind)
		}
	}

	numRows := len(n.rows)
	numCols := len(n.cols)
	m := mat.NewCDense(1<<numRows, 1<<numCols, nil)

	assignment := make(map[Index]int)
	for r := 0; r < 1<<numRows; r++ {
		for c := 0; c < 1<<numCols; c++ {
			for k := range assignment {
				delete(assignment, k)
			}
			for i, ind := range n.rows {
				assignment[ind] = (r >> (numRows - 1 - i)) & 1
			}
			ok := true
			for i, ind := range n.cols {
				bit := (c >> (numCols - 1 - i)) & 1
				if old, dup := assignment[ind]; dup && old != bit {
					// A pass-through wire forces its input and
					// output bits to agree.
					ok = false
					break
				}
				assignment[ind] = bit
			}
			if !ok {
				continue
			}
			idx := 0
			for _, ind := range t.Inds {
				idx = idx<<1 | assignment[ind]
			}
			m.Set(r, c, t.Data[idx])
		}
	}
	return m, nil
}

// Unitary returns the matrix of the bloq in the computational basis.
// The matrix rows follow the bloq's output registers and the columns
// its input registers, in big-endian signature order.
func Unitary(b bloq.Bloq) (*mat.CDense, error) {
	cb, err := bloq.AsComposite(b)
	if err != nil {
		return nil, err
	}
	n, err := FromComposite(cb)
	if err != nil {
		return nil, err
	}
	return n.Matrix()
}

// StateVector returns the state vector prepared by a bloq without
// input registers.
func StateVector(b bloq.Bloq) ([]complex128, error) {
	cb, err := bloq.AsComposite(b)
	if err != nil {
		return nil, err
	}
	if len(cb.Signature().Lefts()) != 0 {
		return nil, fmt.Errorf("%s has input registers", b)
	}
	n, err := FromComposite(cb)
	if err != nil {
		return nil, err
	}
	m, err := n.Matrix()
	if err != nil {
		return nil, err
	}
	rows, _ := m.Dims()
	result := make([]complex128, rows)
	for i := 0; i < rows; i++ {
		result[i] = m.At(i, 0)
	}
	return result, nil
}
