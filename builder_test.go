//
// builder_test.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/bloq/qdt"
)

// testGate is a named atomic bloq for graph tests.
type testGate struct {
	name string
	sig  Signature
}

func (g *testGate) Signature() Signature {
	return g.sig
}

func (g *testGate) String() string {
	return g.name
}

// oneBit creates a gate with a single scalar THRU bit register q.
func oneBit(name string) *testGate {
	return &testGate{
		name: name,
		sig:  MustSignature(NewRegister("q", qdt.Bit())),
	}
}

// twoBit creates a gate with the scalar THRU bit registers ctrl and
// target.
func twoBit(name string) *testGate {
	return &testGate{
		name: name,
		sig: MustSignature(
			NewRegister("ctrl", qdt.Bit()),
			NewRegister("target", qdt.Bit())),
	}
}

func mustAdd(t *testing.T, bb *Builder, bl Bloq,
	ins map[string]Soquets) map[string]Soquets {
	t.Helper()
	outs, err := bb.Add(bl, ins)
	if err != nil {
		t.Fatalf("Add(%s): %s", bl, err)
	}
	return outs
}

func TestBuilderLinear(t *testing.T) {
	bb := NewBuilder()
	q, err := bb.AddQAny("q", 1)
	if err != nil {
		t.Fatalf("AddQAny: %s", err)
	}
	outs := mustAdd(t, bb, oneBit("X"), map[string]Soquets{"q": q})
	outs = mustAdd(t, bb, oneBit("Y"), map[string]Soquets{"q": outs["q"]})

	cb, err := bb.Finalize(map[string]Soquets{"q": outs["q"]})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}
	if cb.NumInstances() != 2 {
		t.Errorf("got %d instances, expected 2", cb.NumInstances())
	}
	if len(cb.Connections()) != 3 {
		t.Errorf("got %d connections, expected 3", len(cb.Connections()))
	}
	sorted := cb.SortedInstances()
	if sorted[0].Bloq.String() != "X" || sorted[1].Bloq.String() != "Y" {
		t.Errorf("bad topological order: %v", sorted)
	}
	sig := cb.Signature()
	if sig.Len() != 1 {
		t.Fatalf("signature %s, expected one register", sig)
	}
	reg, _ := sig.Get("q")
	if reg.Side != SideThru || reg.Dtype != qdt.Any(1) {
		t.Errorf("register %s", reg)
	}
}

func TestBuilderErrors(t *testing.T) {
	bb := NewBuilder()
	q, err := bb.AddRegister(NewRegister("q", qdt.Bit()))
	if err != nil {
		t.Fatalf("AddRegister: %s", err)
	}
	_, err = bb.AddRegister(NewRegister("q", qdt.UInt(4)))
	if err == nil {
		t.Errorf("duplicate register name accepted")
	}

	// Unknown input register name.
	_, err = bb.Add(oneBit("X"), map[string]Soquets{
		"q":     q,
		"bogus": q,
	})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("unknown input register: %v", err)
	}

	// Missing input register.
	_, err = bb.Add(twoBit("CX"), map[string]Soquets{"ctrl": q})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("missing input register: %v", err)
	}

	// Width mismatch.
	w, err := bb.AddRegister(NewRegister("w", qdt.UInt(4)))
	if err != nil {
		t.Fatalf("AddRegister: %s", err)
	}
	_, err = bb.Add(oneBit("X"), map[string]Soquets{"q": w})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("width mismatch: %v", err)
	}

	// Shape mismatch.
	shaped := &testGate{
		name: "S",
		sig:  MustSignature(NewArrayRegister("q", qdt.Bit(), 2)),
	}
	_, err = bb.Add(shaped, map[string]Soquets{"q": q})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("shape mismatch: %v", err)
	}
}

func TestBuilderLinearity(t *testing.T) {
	bb := NewBuilder()
	q, _ := bb.AddQAny("q", 1)

	mustAdd(t, bb, oneBit("X"), map[string]Soquets{"q": q})

	// q is consumed; using it again must fail.
	_, err := bb.Add(oneBit("Y"), map[string]Soquets{"q": q})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("reused soquet: %v", err)
	}
}

func TestBuilderDoubleConsume(t *testing.T) {
	bb := NewBuilder()
	q, _ := bb.AddQAny("q", 1)
	gate := &testGate{
		name: "S",
		sig:  MustSignature(NewArrayRegister("x", qdt.Bit(), 2)),
	}
	soqs, err := NewSoquets([]int{2}, q.One(), q.One())
	if err != nil {
		t.Fatalf("NewSoquets: %s", err)
	}
	_, err = bb.Add(gate, map[string]Soquets{"x": soqs})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("double consume: %v", err)
	}
}

func TestFinalizeUnwired(t *testing.T) {
	bb := NewBuilder()
	q, _ := bb.AddQAny("q", 1)
	outs := mustAdd(t, bb, oneBit("X"), map[string]Soquets{"q": q})

	_, err := bb.Finalize(map[string]Soquets{})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("unwired output register: %v", err)
	}

	// The builder is still usable after the failed finalize.
	cb, err := bb.Finalize(map[string]Soquets{"q": outs["q"]})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}
	if cb.NumInstances() != 1 {
		t.Errorf("got %d instances", cb.NumInstances())
	}
}

func TestFinalizeDangling(t *testing.T) {
	bb := NewBuilder()
	_, err := bb.AddRegister(NewRegister("q", qdt.Bit()).WithSide(SideLeft))
	if err != nil {
		t.Fatalf("AddRegister: %s", err)
	}
	_, err = bb.Finalize(map[string]Soquets{})
	if !errors.Is(err, ErrWiring) {
		t.Fatalf("dangling soquet: %v", err)
	}
	if !strings.Contains(err.Error(), "dangling") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestEmptySoquets(t *testing.T) {
	bb := NewBuilder()
	_, err := bb.AddRegister(NewRegister("out", qdt.Bit()).
		WithSide(SideRight))
	if err != nil {
		t.Fatalf("AddRegister: %s", err)
	}

	// AddRegister hands out empty soquets for a RIGHT register;
	// binding them back is a wiring error, not a silent no-op.
	_, err = bb.Finalize(map[string]Soquets{"out": {}})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("empty soquets bound to output: %v", err)
	}

	bb = NewBuilder()
	_, err = bb.Add(oneBit("X"), map[string]Soquets{"q": {}})
	if !errors.Is(err, ErrWiring) {
		t.Errorf("empty input soquets: %v", err)
	}
}

func TestFinalizeInferred(t *testing.T) {
	bb := NewBuilder()
	q, _ := bb.AddRegister(NewRegister("q", qdt.Bit()).WithSide(SideLeft))

	outs := mustAdd(t, bb, oneBit("X"), map[string]Soquets{"q": q})

	cb, err := bb.Finalize(map[string]Soquets{"out": outs["q"]})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}
	sig := cb.Signature()
	if sig.Len() != 2 {
		t.Fatalf("signature %s", sig)
	}
	reg, ok := sig.Get("out")
	if !ok || reg.Side != SideRight || reg.Dtype != qdt.Bit() {
		t.Errorf("inferred register %s", reg)
	}
}

func TestBuilderFinalized(t *testing.T) {
	bb := NewBuilder()
	q, _ := bb.AddQAny("q", 1)
	_, err := bb.Finalize(map[string]Soquets{"q": q})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}

	_, err = bb.AddQAny("r", 1)
	if !errors.Is(err, ErrWiring) {
		t.Errorf("AddRegister after finalize: %v", err)
	}
	_, err = bb.Add(oneBit("X"), nil)
	if !errors.Is(err, ErrWiring) {
		t.Errorf("Add after finalize: %v", err)
	}
	_, err = bb.Finalize(nil)
	if !errors.Is(err, ErrWiring) {
		t.Errorf("double finalize: %v", err)
	}
}

func TestAsComposite(t *testing.T) {
	gate := twoBit("CX")
	cb, err := AsComposite(gate)
	if err != nil {
		t.Fatalf("AsComposite: %s", err)
	}
	if cb.NumInstances() != 1 {
		t.Fatalf("got %d instances, expected 1", cb.NumInstances())
	}
	if len(cb.Connections()) != 4 {
		t.Errorf("got %d connections, expected 4", len(cb.Connections()))
	}
	if cb.Signature().String() != gate.Signature().String() {
		t.Errorf("signature %s, expected %s",
			cb.Signature(), gate.Signature())
	}

	// A composite wraps to itself.
	cb2, err := AsComposite(cb)
	if err != nil {
		t.Fatalf("AsComposite: %s", err)
	}
	if cb2 != cb {
		t.Errorf("AsComposite re-wrapped a composite")
	}
}

func TestDecomposeHelpers(t *testing.T) {
	gate := oneBit("X")
	_, err := Decompose(gate)
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Decompose of plain gate: %v", err)
	}
	_, err = AdjointOf(gate)
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("AdjointOf of plain gate: %v", err)
	}

	cb, err := AsComposite(gate)
	if err != nil {
		t.Fatalf("AsComposite: %s", err)
	}
	dec, err := Decompose(cb)
	if err != nil || dec != cb {
		t.Errorf("Decompose of composite: %v, %v", dec, err)
	}
}
