//
// dot.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"fmt"
	"io"
)

// Dot creates a Graphviz dot drawing of the composite. The boundary
// soquets are drawn as plaintext nodes and the bloq instances as
// boxes.
func (cb *CompositeBloq) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph bloq\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  rankdir=LR;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")

	fmt.Fprintf(out, "  {\n    rank=source; node [shape=plaintext];\n")
	for _, reg := range cb.sig.Lefts() {
		for idx := 0; idx < reg.NumElements(); idx++ {
			fmt.Fprintf(out, "    i_%s_%d\t[label=\"%s\"];\n",
				reg.Name, idx, wireLabel(reg.Name, idx))
		}
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    rank=sink; node [shape=plaintext];\n")
	for _, reg := range cb.sig.Rights() {
		for idx := 0; idx < reg.NumElements(); idx++ {
			fmt.Fprintf(out, "    o_%s_%d\t[label=\"%s\"];\n",
				reg.Name, idx, wireLabel(reg.Name, idx))
		}
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for _, bi := range cb.insts {
		fmt.Fprintf(out, "    b%d\t[label=\"%s\"];\n", int(bi.ID), bi)
	}
	fmt.Fprintf(out, "  }\n")

	node := func(s Soquet) string {
		switch s.Binst {
		case LeftDangle:
			return fmt.Sprintf("i_%s_%d", s.Reg, s.Idx)
		case RightDangle:
			return fmt.Sprintf("o_%s_%d", s.Reg, s.Idx)
		default:
			return fmt.Sprintf("b%d", int(s.Binst))
		}
	}
	for _, cxn := range cb.cxns {
		fmt.Fprintf(out, "  %s -> %s\t[label=\"%s\"];\n",
			node(cxn.Left), node(cxn.Right),
			wireLabel(cxn.Right.Reg, cxn.Right.Idx))
	}
	fmt.Fprintf(out, "}\n")
}
