//
// composite.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"fmt"
	"sort"
)

// CompositeBloq is an immutable directed acyclic graph of bloq
// instances. The graph edges are connections between soquets. The
// composite's own signature is represented by the virtual boundary
// nodes: LeftDangle produces the soquets of the input registers and
// RightDangle consumes the soquets of the output registers.
//
// CompositeBloq implements Bloq so composites nest as sub-bloqs of
// other composites. A CompositeBloq is created with a Builder and
// never modified afterwards.
type CompositeBloq struct {
	sig   Signature
	insts []BloqInstance
	cxns  []Connection
}

// newCompositeBloq creates a composite and verifies the graph.
func newCompositeBloq(sig Signature, insts []BloqInstance,
	cxns []Connection) (*CompositeBloq, error) {

	cb := &CompositeBloq{
		sig:   sig,
		insts: insts,
		cxns:  cxns,
	}
	if err := cb.Validate(); err != nil {
		return nil, err
	}
	return cb, nil
}

// Signature implements Bloq.Signature.
func (cb *CompositeBloq) Signature() Signature {
	return cb.sig
}

// String implements Bloq.String.
func (cb *CompositeBloq) String() string {
	return "CompositeBloq"
}

// Decompose implements Decomposable.Decompose. A composite is its
// own decomposition.
func (cb *CompositeBloq) Decompose() (*CompositeBloq, error) {
	return cb, nil
}

// NumInstances returns the number of bloq instances in the
// composite.
func (cb *CompositeBloq) NumInstances() int {
	return len(cb.insts)
}

// Instances returns the bloq instances in creation order.
func (cb *CompositeBloq) Instances() []BloqInstance {
	return append([]BloqInstance(nil), cb.insts...)
}

// Instance returns the instance with the ID.
func (cb *CompositeBloq) Instance(id InstanceID) (BloqInstance, bool) {
	if id < 0 || int(id) >= len(cb.insts) {
		return BloqInstance{}, false
	}
	return cb.insts[id], true
}

// Connections returns the connections of the composite.
func (cb *CompositeBloq) Connections() []Connection {
	return append([]Connection(nil), cb.cxns...)
}

// regsOf returns the registers of the instance that face the
// direction: the output registers when out is true, otherwise the
// input registers. The boundary nodes face one direction only.
func (cb *CompositeBloq) regsOf(id InstanceID, out bool) ([]Register, error) {
	switch id {
	case LeftDangle:
		if out {
			return cb.sig.Lefts(), nil
		}
		return nil, nil

	case RightDangle:
		if out {
			return nil, nil
		}
		return cb.sig.Rights(), nil

	default:
		bi, ok := cb.Instance(id)
		if !ok {
			return nil, fmt.Errorf("unknown instance %s", id)
		}
		if out {
			return bi.Bloq.Signature().Rights(), nil
		}
		return bi.Bloq.Signature().Lefts(), nil
	}
}

// connsOf groups the connections touching the instance by register
// name. For each register the connections are in wire order i.e.
// ordered by the flat element index of the instance's endpoint.
func (cb *CompositeBloq) connsOf(id InstanceID, out bool) (
	map[string][]Connection, error) {

	regs, err := cb.regsOf(id, out)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]Connection)
	for _, reg := range regs {
		result[reg.Name] = make([]Connection, reg.NumElements())
	}
	for _, cxn := range cb.cxns {
		var end Soquet
		if out {
			end = cxn.Left
		} else {
			end = cxn.Right
		}
		if end.Binst != id {
			continue
		}
		slots, ok := result[end.Reg]
		if !ok || end.Idx < 0 || end.Idx >= len(slots) {
			return nil, wireErrorf("stray connection %s", cxn)
		}
		slots[end.Idx] = cxn
	}
	var zero Connection
	for name, slots := range result {
		for idx, cxn := range slots {
			if cxn == zero {
				return nil, wireErrorf("%s.%s[%d] is not connected",
					id, name, idx)
			}
		}
	}
	return result, nil
}

// IncomingConns returns the connections consumed by the instance,
// grouped by register name and ordered by wire. For RightDangle the
// groups follow the composite's output registers.
func (cb *CompositeBloq) IncomingConns(id InstanceID) (
	map[string][]Connection, error) {
	return cb.connsOf(id, false)
}

// OutgoingConns returns the connections produced by the instance,
// grouped by register name and ordered by wire. For LeftDangle the
// groups follow the composite's input registers.
func (cb *CompositeBloq) OutgoingConns(id InstanceID) (
	map[string][]Connection, error) {
	return cb.connsOf(id, true)
}

// SortedInstances returns the bloq instances in a deterministic
// topological order: an instance is listed only after all instances
// feeding it, and ready instances are listed in creation order.
func (cb *CompositeBloq) SortedInstances() []BloqInstance {
	n := len(cb.insts)

	indeg := make([]int, n)
	succ := make(map[InstanceID][]InstanceID)
	for _, cxn := range cb.cxns {
		from := cxn.Left.Binst
		to := cxn.Right.Binst
		if from.IsDangling() || to.IsDangling() {
			continue
		}
		succ[from] = append(succ[from], to)
		indeg[to]++
	}

	done := make([]bool, n)
	result := make([]BloqInstance, 0, n)
	for len(result) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !done[i] && indeg[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			// Validate rejects cyclic graphs.
			panic("cycle in composite bloq")
		}
		done[next] = true
		result = append(result, cb.insts[next])
		for _, to := range succ[InstanceID(next)] {
			indeg[to]--
		}
	}
	return result
}

// endpoint resolves a connection endpoint to its register.
func (cb *CompositeBloq) endpoint(s Soquet, producer bool) (Register, error) {
	regs, err := cb.regsOf(s.Binst, producer)
	if err != nil {
		return Register{}, err
	}
	for _, reg := range regs {
		if reg.Name == s.Reg {
			if s.Idx < 0 || s.Idx >= reg.NumElements() {
				return Register{}, wireErrorf(
					"soquet %s out of register shape %v", s, reg.Shape)
			}
			return reg, nil
		}
	}
	dir := "consume"
	if producer {
		dir = "produce"
	}
	return Register{}, wireErrorf("%s does not %s register %s",
		s.Binst, dir, s.Reg)
}

// Validate verifies the graph invariants: instance IDs are dense,
// every connection joins a produced soquet to a consumed soquet of
// the same width, every soquet is connected exactly once, and the
// graph is acyclic.
func (cb *CompositeBloq) Validate() error {
	for idx, bi := range cb.insts {
		if int(bi.ID) != idx {
			return wireErrorf("instance %s at position %d", bi, idx)
		}
		if bi.Bloq == nil {
			return wireErrorf("instance %s has no bloq", bi.ID)
		}
	}

	produced := make(map[Soquet]int)
	consumed := make(map[Soquet]int)
	for _, cxn := range cb.cxns {
		left, err := cb.endpoint(cxn.Left, true)
		if err != nil {
			return err
		}
		right, err := cb.endpoint(cxn.Right, false)
		if err != nil {
			return err
		}
		if left.Dtype.Bits != right.Dtype.Bits {
			return wireErrorf("%s: width mismatch: %s != %s",
				cxn, left.Dtype, right.Dtype)
		}
		produced[cxn.Left]++
		consumed[cxn.Right]++
	}

	// Every produced soquet is consumed exactly once and vice versa.
	check := func(id InstanceID) error {
		for _, out := range []bool{true, false} {
			regs, err := cb.regsOf(id, out)
			if err != nil {
				return err
			}
			counts := produced
			if !out {
				counts = consumed
			}
			for _, reg := range regs {
				for idx := 0; idx < reg.NumElements(); idx++ {
					soq := Soquet{Binst: id, Reg: reg.Name, Idx: idx}
					switch counts[soq] {
					case 0:
						return wireErrorf("%s is not connected", soq)
					case 1:
					default:
						return wireErrorf("%s is connected %d times",
							soq, counts[soq])
					}
				}
			}
		}
		return nil
	}
	if err := check(LeftDangle); err != nil {
		return err
	}
	if err := check(RightDangle); err != nil {
		return err
	}
	for _, bi := range cb.insts {
		if err := check(bi.ID); err != nil {
			return err
		}
	}

	return cb.checkAcyclic()
}

// checkAcyclic verifies that the instance dependencies form a DAG.
func (cb *CompositeBloq) checkAcyclic() error {
	n := len(cb.insts)
	indeg := make([]int, n)
	succ := make(map[InstanceID][]InstanceID)
	for _, cxn := range cb.cxns {
		if cxn.Left.Binst.IsDangling() || cxn.Right.Binst.IsDangling() {
			continue
		}
		succ[cxn.Left.Binst] = append(succ[cxn.Left.Binst], cxn.Right.Binst)
		indeg[cxn.Right.Binst]++
	}
	ready := make([]InstanceID, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, InstanceID(i))
		}
	}
	numDone := 0
	for len(ready) > 0 {
		id := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		numDone++
		for _, to := range succ[id] {
			indeg[to]--
			if indeg[to] == 0 {
				ready = append(ready, to)
			}
		}
	}
	if numDone < n {
		var cyclic []InstanceID
		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				cyclic = append(cyclic, InstanceID(i))
			}
		}
		sort.Slice(cyclic, func(i, j int) bool {
			return cyclic[i] < cyclic[j]
		})
		return wireErrorf("cycle through instances %v", cyclic)
	}
	return nil
}
