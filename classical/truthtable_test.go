//
// truthtable_test.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package classical

import (
	"context"
	"strings"
	"testing"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/qdt"
)

// idGate passes its register through unchanged.
type idGate struct {
	dt qdt.Info
}

func (g idGate) Signature() bloq.Signature {
	return bloq.MustSignature(bloq.NewRegister("q", g.dt))
}

func (g idGate) String() string {
	return "I"
}

func (g idGate) CallClassically(vals Vals) (Vals, error) {
	return vals, nil
}

func TestTruthTableFormat(t *testing.T) {
	tt, err := NewTruthTable(context.Background(), idGate{dt: qdt.Bit()})
	if err != nil {
		t.Fatalf("NewTruthTable: %s", err)
	}
	expected := `q  |  q
--------
0 -> 0
1 -> 1
`
	if tt.Format() != expected {
		t.Errorf("Format:\n%s\nexpected:\n%s", tt.Format(), expected)
	}
}

func TestTruthTableCNOT(t *testing.T) {
	tt, err := NewTruthTable(context.Background(), cnotGate{})
	if err != nil {
		t.Fatalf("NewTruthTable: %s", err)
	}
	rows := tt.Rows()
	if len(rows) != 4 {
		t.Fatalf("got %d rows, expected 4", len(rows))
	}
	expected := [][4]uint64{
		{0, 0, 0, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 0},
	}
	for i, row := range rows {
		got := [4]uint64{
			row.Ins[0].Uint(), row.Ins[1].Uint(),
			row.Outs[0].Uint(), row.Outs[1].Uint(),
		}
		if got != expected[i] {
			t.Errorf("row %d: got %v, expected %v", i, got, expected[i])
		}
	}

	text := tt.Format()
	if !strings.HasPrefix(text, "ctrl, target  |  ctrl, target\n") {
		t.Errorf("heading: %s", text)
	}
	if !strings.Contains(text, "1, 0 -> 1, 1\n") {
		t.Errorf("row: %s", text)
	}
}

func TestTruthTableSigned(t *testing.T) {
	tt, err := NewTruthTable(context.Background(), idGate{dt: qdt.Int(2)})
	if err != nil {
		t.Fatalf("NewTruthTable: %s", err)
	}
	rows := tt.Rows()
	if len(rows) != 4 {
		t.Fatalf("got %d rows, expected 4", len(rows))
	}
	expected := []int64{-2, -1, 0, 1}
	for i, row := range rows {
		if row.Ins[0].Int() != expected[i] {
			t.Errorf("row %d: %d, expected %d",
				i, row.Ins[0].Int(), expected[i])
		}
	}
	if !strings.Contains(tt.Format(), "-2 -> -2\n") {
		t.Errorf("Format:\n%s", tt.Format())
	}
}

func TestTruthTableTooWide(t *testing.T) {
	_, err := NewTruthTable(context.Background(),
		idGate{dt: qdt.UInt(MaxTableBits + 1)})
	if err == nil {
		t.Fatalf("oversized truth table accepted")
	}
	if !strings.Contains(err.Error(), "truth table") {
		t.Errorf("error: %s", err)
	}
}

func TestTruthTableRender(t *testing.T) {
	tt, err := NewTruthTable(context.Background(), cnotGate{})
	if err != nil {
		t.Fatalf("NewTruthTable: %s", err)
	}
	var sb strings.Builder
	tt.Render(&sb)
	out := sb.String()
	for _, part := range []string{"ctrl", "target", "ctrl'", "target'"} {
		if !strings.Contains(out, part) {
			t.Errorf("render output missing %q:\n%s", part, out)
		}
	}
}
