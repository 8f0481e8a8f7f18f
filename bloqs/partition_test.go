//
// partition_test.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloqs

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/classical"
	"github.com/markkurossi/bloq/qdt"
)

func TestPartitionClassical(t *testing.T) {
	p, err := NewPartition(8, []bloq.Register{
		bloq.NewRegister("a", qdt.UInt(3)),
		bloq.NewArrayRegister("b", qdt.Bit(), 2),
		bloq.NewRegister("c", qdt.UInt(3)),
	})
	if err != nil {
		t.Fatalf("NewPartition: %s", err)
	}

	outs, err := classical.CallMap(p, classical.Vals{
		"x": classical.Scalar(0b10110101),
	})
	if err != nil {
		t.Fatalf("CallMap: %s", err)
	}
	want := classical.Vals{
		"a": classical.Scalar(0b101),
		"b": classical.BitArray(1, 0),
		"c": classical.Scalar(0b101),
	}
	if diff := cmp.Diff(want, outs); diff != "" {
		t.Errorf("partition differs (-want +got):\n%s", diff)
	}

	back, err := classical.CallMap(p.Adjoint(), outs)
	if err != nil {
		t.Fatalf("CallMap: %s", err)
	}
	if back["x"].Uint() != 0b10110101 {
		t.Errorf("round trip gave %#b", back["x"].Uint())
	}
}

func TestPartitionSigned(t *testing.T) {
	p, err := NewPartition(6, []bloq.Register{
		bloq.NewRegister("s", qdt.Int(4)),
		bloq.NewRegister("u", qdt.UInt(2)),
	})
	if err != nil {
		t.Fatalf("NewPartition: %s", err)
	}
	outs, err := classical.CallMap(p, classical.Vals{
		"x": classical.Scalar(0b111101),
	})
	if err != nil {
		t.Fatalf("CallMap: %s", err)
	}
	if outs["s"].Int() != -1 {
		t.Errorf("signed part %d, expected -1", outs["s"].Int())
	}
	if outs["u"].Uint() != 1 {
		t.Errorf("unsigned part %d, expected 1", outs["u"].Uint())
	}
}

func TestPartitionComposite(t *testing.T) {
	p, err := NewPartition(4, []bloq.Register{
		bloq.NewRegister("hi", qdt.UInt(2)),
		bloq.NewRegister("lo", qdt.UInt(2)),
	})
	if err != nil {
		t.Fatalf("NewPartition: %s", err)
	}

	// Partition x into halves, swap them, and gather.
	bb := bloq.NewBuilder()
	soqs, err := bb.AddQAny("x", 4)
	if err != nil {
		t.Fatalf("AddQAny: %s", err)
	}
	parts, err := PartitionSoqs(bb, p, soqs.One())
	if err != nil {
		t.Fatalf("PartitionSoqs: %s", err)
	}
	gathered, err := bb.Add(p.Adjoint(), map[string]bloq.Soquets{
		"hi": parts["lo"],
		"lo": parts["hi"],
	})
	if err != nil {
		t.Fatalf("Add: %s", err)
	}
	cb, err := bb.Finalize(map[string]bloq.Soquets{
		"x": gathered["x"],
	})
	if err != nil {
		t.Fatalf("Finalize: %s", err)
	}

	outs, err := classical.Call(cb, classical.Vals{
		"x": classical.Scalar(0b0110),
	})
	if err != nil {
		t.Fatalf("Call: %s", err)
	}
	if outs[0].Uint() != 0b1001 {
		t.Errorf("swapped halves of 0b0110: %#b", outs[0].Uint())
	}
}

func TestPartitionSoqsAdjoint(t *testing.T) {
	p, err := NewPartition(2, []bloq.Register{
		bloq.NewRegister("a", qdt.Bit()),
		bloq.NewRegister("b", qdt.Bit()),
	})
	if err != nil {
		t.Fatalf("NewPartition: %s", err)
	}
	bb := bloq.NewBuilder()
	soqs, err := bb.AddQAny("x", 2)
	if err != nil {
		t.Fatalf("AddQAny: %s", err)
	}

	// The helper uses the partition direction even when p is the
	// adjoint.
	parts, err := PartitionSoqs(bb, p.Adjoint().(*Partition), soqs.One())
	if err != nil {
		t.Fatalf("PartitionSoqs: %s", err)
	}
	if len(parts) != 2 || parts["a"].Len() != 1 || parts["b"].Len() != 1 {
		t.Errorf("unexpected parts: %v", parts)
	}
}

func TestPartitionErrors(t *testing.T) {
	_, err := NewPartition(8, nil)
	if err == nil {
		t.Errorf("NewPartition accepted empty parts")
	}
	_, err = NewPartition(8, []bloq.Register{
		bloq.NewRegister("a", qdt.UInt(3)),
		bloq.NewRegister("b", qdt.UInt(3)),
	})
	if err == nil {
		t.Errorf("NewPartition accepted short parts")
	}
	_, err = NewPartition(8, []bloq.Register{
		bloq.NewRegister("a", qdt.UInt(4)),
		bloq.NewRegister("a", qdt.UInt(4)),
	})
	if err == nil {
		t.Errorf("NewPartition accepted duplicate part names")
	}
	_, err = NewPartition(0, []bloq.Register{
		bloq.NewRegister("a", qdt.UInt(4)),
	})
	if err == nil {
		t.Errorf("NewPartition accepted zero width")
	}
	_, err = NewPartition(65, []bloq.Register{
		bloq.NewRegister("a", qdt.UInt(65)),
	})
	if err == nil {
		t.Errorf("NewPartition accepted too wide register")
	}
}

func TestPartitionAccessors(t *testing.T) {
	regs := []bloq.Register{
		bloq.NewRegister("a", qdt.UInt(3)),
		bloq.NewRegister("b", qdt.UInt(5)),
	}
	p, err := NewPartition(8, regs)
	if err != nil {
		t.Fatalf("NewPartition: %s", err)
	}
	if p.N() != 8 {
		t.Errorf("N=%d", p.N())
	}
	if diff := cmp.Diff(regs, p.Regs()); diff != "" {
		t.Errorf("Regs differ (-want +got):\n%s", diff)
	}
	if p.String() != "Partition" {
		t.Errorf("String=%s", p)
	}
	adj, err := bloq.AdjointOf(p)
	if err != nil {
		t.Fatalf("AdjointOf: %s", err)
	}
	if adj.String() != "Unpartition" {
		t.Errorf("adjoint String=%s", adj)
	}
}
