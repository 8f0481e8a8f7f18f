//
// composite_test.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"strings"
	"testing"

	"github.com/markkurossi/bloq/qdt"
)

// chain builds the composite X;Y on a single bit register q.
func chain(t *testing.T) *CompositeBloq {
	t.Helper()
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
	return cb
}

func TestSortedInstancesDiamond(t *testing.T) {
	bb := NewBuilder()
	a, _ := bb.AddQAny("a", 1)
	b, _ := bb.AddQAny("b", 1)

	// Create the second branch first to check that ready instances
	// come out in creation order.
	outsB := mustAdd(t, bb, oneBit("B"), map[string]Soquets{"q": b})
	outsA := mustAdd(t, bb, oneBit("A"), map[string]Soquets{"q": a})
	outs := mustAdd(t, bb, twoBit("M"), map[string]Soquets{
		"ctrl":   outsA["q"],
		"target": outsB["q"],
	})
	cb, err := bb.Finalize(map[string]Soquets{
		"a": outs["ctrl"],
		"b": outs["target"],
	})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}

	sorted := cb.SortedInstances()
	var names []string
	for _, bi := range sorted {
		names = append(names, bi.Bloq.String())
	}
	expected := []string{"B", "A", "M"}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("order %v, expected %v", names, expected)
		}
	}
}

func TestConnGroups(t *testing.T) {
	bb := NewBuilder()
	q0, _ := bb.AddQAny("q0", 1)
	q1, _ := bb.AddQAny("q1", 1)

	gate := &testGate{
		name: "S",
		sig:  MustSignature(NewArrayRegister("x", qdt.Any(1), 2)),
	}
	ins, err := NewSoquets([]int{2}, q0.One(), q1.One())
	if err != nil {
		t.Fatalf("NewSoquets: %s", err)
	}
	outs := mustAdd(t, bb, gate, map[string]Soquets{"x": ins})

	x := outs["x"]
	cb, err := bb.Finalize(map[string]Soquets{
		"q0": Single(x.At(0)),
		"q1": Single(x.At(1)),
	})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}

	in, err := cb.IncomingConns(0)
	if err != nil {
		t.Fatalf("IncomingConns: %s", err)
	}
	if len(in["x"]) != 2 {
		t.Fatalf("incoming x: %v", in["x"])
	}
	if in["x"][0].Left != (Soquet{Binst: LeftDangle, Reg: "q0"}) ||
		in["x"][1].Left != (Soquet{Binst: LeftDangle, Reg: "q1"}) {
		t.Errorf("incoming order: %v", in["x"])
	}

	out, err := cb.OutgoingConns(0)
	if err != nil {
		t.Fatalf("OutgoingConns: %s", err)
	}
	if out["x"][0].Right != (Soquet{Binst: RightDangle, Reg: "q0"}) ||
		out["x"][1].Right != (Soquet{Binst: RightDangle, Reg: "q1"}) {
		t.Errorf("outgoing order: %v", out["x"])
	}

	boundary, err := cb.OutgoingConns(LeftDangle)
	if err != nil {
		t.Fatalf("OutgoingConns(LeftDangle): %s", err)
	}
	if len(boundary) != 2 {
		t.Errorf("boundary groups: %v", boundary)
	}
}

func TestDebugText(t *testing.T) {
	cb := chain(t)
	expected := `X⁰
  q <- LeftDangle.q
  q -> Y¹.q
Y¹
  q <- X⁰.q
  q -> RightDangle.q
`
	if cb.DebugText() != expected {
		t.Errorf("DebugText:\n%s\nexpected:\n%s", cb.DebugText(), expected)
	}
}

func TestFingerprint(t *testing.T) {
	cb1 := chain(t)
	cb2 := chain(t)
	if cb1.Fingerprint() != cb2.Fingerprint() {
		t.Errorf("equal composites have different fingerprints")
	}

	bb := NewBuilder()
	q, _ := bb.AddQAny("q", 1)
	outs := mustAdd(t, bb, oneBit("Y"), map[string]Soquets{"q": q})
	outs = mustAdd(t, bb, oneBit("X"), map[string]Soquets{"q": outs["q"]})
	cb3, err := bb.Finalize(map[string]Soquets{"q": outs["q"]})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}
	if cb1.Fingerprint() == cb3.Fingerprint() {
		t.Errorf("different composites have equal fingerprints")
	}
	if len(cb1.Fingerprint().String()) != 64 {
		t.Errorf("fingerprint %s", cb1.Fingerprint())
	}
}

func TestDot(t *testing.T) {
	cb := chain(t)
	var sb strings.Builder
	cb.Dot(&sb)
	dot := sb.String()
	for _, part := range []string{
		"digraph bloq",
		"i_q_0",
		"o_q_0",
		"b0",
		"b1",
		"b0 -> b1",
	} {
		if !strings.Contains(dot, part) {
			t.Errorf("dot output missing %q:\n%s", part, dot)
		}
	}
}

func TestCompositeAccessors(t *testing.T) {
	cb := chain(t)
	if cb.String() != "CompositeBloq" {
		t.Errorf("String: %s", cb)
	}
	insts := cb.Instances()
	if len(insts) != 2 {
		t.Fatalf("instances: %v", insts)
	}
	bi, ok := cb.Instance(1)
	if !ok || bi.Bloq.String() != "Y" {
		t.Errorf("Instance(1): %v, %v", bi, ok)
	}
	_, ok = cb.Instance(LeftDangle)
	if ok {
		t.Errorf("Instance(LeftDangle) succeeded")
	}
	_, ok = cb.Instance(99)
	if ok {
		t.Errorf("Instance(99) succeeded")
	}
	if err := cb.Validate(); err != nil {
		t.Errorf("Validate: %s", err)
	}
}
