//
// network.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package tensor

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/markkurossi/bloq"
)

// ConnGroup is the shaped array of connections touching one register
// of one bloq instance, in wire order.
type ConnGroup struct {
	shape []int
	conns []bloq.Connection
}

// Shape returns the register shape of the group.
func (g *ConnGroup) Shape() []int {
	return append([]int(nil), g.shape...)
}

// Len returns the number of connections in the group.
func (g *ConnGroup) Len() int {
	return len(g.conns)
}

// One returns the single connection of a scalar register group. It
// panics if the group is not scalar.
func (g *ConnGroup) One() bloq.Connection {
	if len(g.shape) != 0 || len(g.conns) != 1 {
		panic(fmt.Sprintf("One of non-scalar connection group, shape %v",
			g.shape))
	}
	return g.conns[0]
}

// At returns the connection at the multi-dimensional index.
func (g *ConnGroup) At(idx ...int) bloq.Connection {
	return g.conns[bloq.FlatIndex(g.shape, idx...)]
}

// Flat returns the connections in row-major order.
func (g *ConnGroup) Flat() []bloq.Connection {
	return append([]bloq.Connection(nil), g.conns...)
}

// Bloq is a bloq with a tensor factorization. The network assembler
// discovers the factorization through this interface; bloqs without
// it are flattened through their decomposition.
type Bloq interface {
	bloq.Bloq

	// Tensors returns the bloq's tensors. The incoming and outgoing
	// groups carry the connections of the bloq's input and output
	// registers; the returned tensor legs label those connections
	// bit by bit.
	Tensors(incoming, outgoing map[string]*ConnGroup) ([]*Tensor, error)
}

// Network is the tensor network of a composite bloq. The cols legs
// are the composite's input boundary and the rows legs its output
// boundary, both in big-endian signature order.
type Network struct {
	tensors []*Tensor
	rows    []Index
	cols    []Index
}

// Tensors returns the tensors of the network.
func (n *Network) Tensors() []*Tensor {
	return append([]*Tensor(nil), n.tensors...)
}

// Rows returns the output boundary legs in big-endian signature
// order.
func (n *Network) Rows() []Index {
	return append([]Index(nil), n.rows...)
}

// Cols returns the input boundary legs in big-endian signature
// order.
func (n *Network) Cols() []Index {
	return append([]Index(nil), n.cols...)
}

// groupify wraps per-register connections into connection groups.
func groupify(regs []bloq.Register, conns map[string][]bloq.Connection) (
	map[string]*ConnGroup, error) {

	result := make(map[string]*ConnGroup)
	for _, reg := range regs {
		c, ok := conns[reg.Name]
		if !ok {
			return nil, fmt.Errorf("no connections for register %s",
				reg.Name)
		}
		result[reg.Name] = &ConnGroup{
			shape: reg.Shape,
			conns: c,
		}
	}
	return result, nil
}

// boundaryLegs enumerates the bit-level legs of the registers over
// the connections: registers in signature order, elements in
// row-major order, bits from the most significant down.
func boundaryLegs(regs []bloq.Register, groups map[string]*ConnGroup) []Index {
	var legs []Index
	for _, reg := range regs {
		for _, cxn := range groups[reg.Name].conns {
			for bit := 0; bit < reg.Dtype.Bits; bit++ {
				legs = append(legs, Index{
					Cxn: cxn,
					Bit: bit,
				})
			}
		}
	}
	return legs
}

// instanceTensors returns the tensors of the bloq instance, either
// from the bloq's own factorization or by flattening its
// decomposition.
func instanceTensors(bi bloq.BloqInstance,
	in, out map[string]*ConnGroup) ([]*Tensor, error) {

	if impl, ok := bi.Bloq.(Bloq); ok {
		return impl.Tensors(in, out)
	}
	cb, err := bloq.Decompose(bi.Bloq)
	if err != nil {
		return nil, fmt.Errorf("%s does not support tensor simulation: %w",
			bi.Bloq, errors.ErrUnsupported)
	}
	log.Debugf("flattening %s into its decomposition", bi)
	return flatten(bi.ID, cb, in, out)
}

// nest makes an internal leg of a flattened decomposition unique to
// the enclosing instance. Without it the sub-composite's connections
// could collide with the enclosing network's connections.
func nest(id bloq.InstanceID, ind Index) Index {
	ind.Cxn.Left.Reg = fmt.Sprintf("%d/%s", int(id), ind.Cxn.Left.Reg)
	ind.Cxn.Right.Reg = fmt.Sprintf("%d/%s", int(id), ind.Cxn.Right.Reg)
	return ind
}

// flatten assembles the tensors of the decomposition cb and relabels
// its legs: boundary legs take the outer connections in and out,
// internal legs are nested under the enclosing instance id.
func flatten(id bloq.InstanceID, cb *bloq.CompositeBloq,
	in, out map[string]*ConnGroup) ([]*Tensor, error) {

	sub, err := FromComposite(cb)
	if err != nil {
		return nil, err
	}

	// Boundary legs of the decomposition map to the outer legs.
	relabel := make(map[Index]Index)
	ldConns, err := cb.OutgoingConns(bloq.LeftDangle)
	if err != nil {
		return nil, err
	}
	for _, reg := range cb.Signature().Lefts() {
		outer := in[reg.Name]
		for idx, cxn := range ldConns[reg.Name] {
			for bit := 0; bit < reg.Dtype.Bits; bit++ {
				relabel[Index{Cxn: cxn, Bit: bit}] = Index{
					Cxn: outer.conns[idx],
					Bit: bit,
				}
			}
		}
	}
	rdConns, err := cb.IncomingConns(bloq.RightDangle)
	if err != nil {
		return nil, err
	}
	for _, reg := range cb.Signature().Rights() {
		outer := out[reg.Name]
		for idx, cxn := range rdConns[reg.Name] {
			for bit := 0; bit < reg.Dtype.Bits; bit++ {
				relabel[Index{Cxn: cxn, Bit: bit}] = Index{
					Cxn: outer.conns[idx],
					Bit: bit,
				}
			}
		}
	}

	tensors := sub.tensors
	for _, t := range tensors {
		inds := make([]Index, len(t.Inds))
		for i, ind := range t.Inds {
			if mapped, ok := relabel[ind]; ok {
				inds[i] = mapped
			} else {
				inds[i] = nest(id, ind)
			}
		}
		t.Inds = inds
	}

	// A wire passing straight through the decomposition connects two
	// different outer connections: wire them with identities.
	for _, cxn := range cb.Connections() {
		if cxn.Left.Binst != bloq.LeftDangle ||
			cxn.Right.Binst != bloq.RightDangle {
			continue
		}
		reg, ok := cb.Signature().Get(cxn.Left.Reg)
		if !ok {
			return nil, fmt.Errorf("unknown register %s", cxn.Left.Reg)
		}
		inCxn := in[cxn.Left.Reg].conns[cxn.Left.Idx]
		outCxn := out[cxn.Right.Reg].conns[cxn.Right.Idx]
		for bit := 0; bit < reg.Dtype.Bits; bit++ {
			tensors = append(tensors, Eye2(
				Index{Cxn: outCxn, Bit: bit},
				Index{Cxn: inCxn, Bit: bit},
				"wire"))
		}
	}
	return tensors, nil
}

// FromComposite assembles the tensor network of the composite. Each
// instance contributes its tensors and the boundary legs follow the
// composite's signature. The assembled network is verified: an
// internal leg must appear in exactly two tensors and a boundary leg
// in exactly one.
func FromComposite(cb *bloq.CompositeBloq) (*Network, error) {
	n := &Network{}

	for _, bi := range cb.Instances() {
		inConns, err := cb.IncomingConns(bi.ID)
		if err != nil {
			return nil, err
		}
		outConns, err := cb.OutgoingConns(bi.ID)
		if err != nil {
			return nil, err
		}
		sig := bi.Bloq.Signature()
		in, err := groupify(sig.Lefts(), inConns)
		if err != nil {
			return nil, err
		}
		out, err := groupify(sig.Rights(), outConns)
		if err != nil {
			return nil, err
		}
		tensors, err := instanceTensors(bi, in, out)
		if err != nil {
			return nil, err
		}
		n.tensors = append(n.tensors, tensors...)
	}

	ldConns, err := cb.OutgoingConns(bloq.LeftDangle)
	if err != nil {
		return nil, err
	}
	lefts, err := groupify(cb.Signature().Lefts(), ldConns)
	if err != nil {
		return nil, err
	}
	n.cols = boundaryLegs(cb.Signature().Lefts(), lefts)

	rdConns, err := cb.IncomingConns(bloq.RightDangle)
	if err != nil {
		return nil, err
	}
	rights, err := groupify(cb.Signature().Rights(), rdConns)
	if err != nil {
		return nil, err
	}
	n.rows = boundaryLegs(cb.Signature().Rights(), rights)

	if err := n.validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// validate checks the leg degrees of the network: an internal leg
// appears in exactly two tensors, a boundary leg in exactly one, and
// a leg of a wire passing straight through the composite in none.
func (n *Network) validate() error {
	count := make(map[Index]int)
	for _, t := range n.tensors {
		for _, ind := range t.Inds {
			count[ind]++
		}
	}

	rows := make(map[Index]bool)
	for _, ind := range n.rows {
		rows[ind] = true
	}
	cols := make(map[Index]bool)
	for _, ind := range n.cols {
		cols[ind] = true
	}

	seen := make(map[Index]bool)
	check := func(ind Index) error {
		if seen[ind] {
			return nil
		}
		seen[ind] = true

		expected := 2
		switch {
		case rows[ind] && cols[ind]:
			expected = 0
		case rows[ind] || cols[ind]:
			expected = 1
		}
		if count[ind] != expected {
			return fmt.Errorf(
				"tensor leg %s appears %d times, expected %d",
				ind, count[ind], expected)
		}
		return nil
	}
	for ind := range count {
		if err := check(ind); err != nil {
			return err
		}
	}
	for ind := range rows {
		if err := check(ind); err != nil {
			return err
		}
	}
	for ind := range cols {
		if err := check(ind); err != nil {
			return err
		}
	}
	return nil
}
