//
// debug.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"fmt"
	"strings"
)

// soqLabel renders the soquet with the bloq name of its instance.
func (cb *CompositeBloq) soqLabel(s Soquet) string {
	prefix := s.Binst.String()
	if bi, ok := cb.Instance(s.Binst); ok {
		prefix = bi.String()
	}
	label := fmt.Sprintf("%s.%s", prefix, s.Reg)
	if s.Idx > 0 {
		label += fmt.Sprintf("[%d]", s.Idx)
	}
	return label
}

// wireLabel renders the instance-local end of the connection.
func wireLabel(reg string, idx int) string {
	if idx > 0 {
		return fmt.Sprintf("%s[%d]", reg, idx)
	}
	return reg
}

// DebugText renders the composite as text: one block per instance in
// topological order, listing the incoming and outgoing wires of the
// instance.
func (cb *CompositeBloq) DebugText() string {
	var sb strings.Builder

	for _, bi := range cb.SortedInstances() {
		sb.WriteString(bi.String())
		sb.WriteRune('\n')

		ins, err := cb.IncomingConns(bi.ID)
		if err != nil {
			fmt.Fprintf(&sb, "  !%s\n", err)
			continue
		}
		outs, err := cb.OutgoingConns(bi.ID)
		if err != nil {
			fmt.Fprintf(&sb, "  !%s\n", err)
			continue
		}
		sig := bi.Bloq.Signature()
		for _, reg := range sig.Lefts() {
			for idx, cxn := range ins[reg.Name] {
				fmt.Fprintf(&sb, "  %s <- %s\n",
					wireLabel(reg.Name, idx), cb.soqLabel(cxn.Left))
			}
		}
		for _, reg := range sig.Rights() {
			for idx, cxn := range outs[reg.Name] {
				fmt.Fprintf(&sb, "  %s -> %s\n",
					wireLabel(reg.Name, idx), cb.soqLabel(cxn.Right))
			}
		}
	}
	return sb.String()
}
