//
// truthtable.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package classical

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/markkurossi/tabulate"
	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/bloq"
)

// MaxTableBits limits the total input width of truth table
// enumeration.
const MaxTableBits = 20

// Row is one truth table row: the input register values and the
// output register values they map to.
type Row struct {
	Ins  []Value
	Outs []Value
}

// TruthTable is the complete classical truth table of a bloq: the
// output register values for every assignment of the input
// registers.
type TruthTable struct {
	ins  []bloq.Register
	outs []bloq.Register
	rows []Row
}

// NewTruthTable derives the complete classical truth table of the
// bloq. The input assignments are enumerated in data type order with
// the last input varying fastest, and the rows are evaluated in
// parallel. The total input width of the bloq must not exceed
// MaxTableBits bits.
func NewTruthTable(ctx context.Context, b bloq.Bloq) (*TruthTable, error) {
	sig := b.Signature()
	tt := &TruthTable{
		ins:  sig.Lefts(),
		outs: sig.Rights(),
	}

	totalBits := 0
	for _, reg := range tt.ins {
		totalBits += reg.TotalBits()
	}
	if totalBits > MaxTableBits {
		return nil, fmt.Errorf("truth table over %d input bits (max %d)",
			totalBits, MaxTableBits)
	}

	// One domain per input register element, in row-major order.
	type element struct {
		reg    int
		domain []uint64
	}
	var elements []element
	numRows := 1
	for regIdx, reg := range tt.ins {
		domain := reg.Dtype.Domain()
		for i := 0; i < reg.NumElements(); i++ {
			elements = append(elements, element{
				reg:    regIdx,
				domain: domain,
			})
			numRows *= len(domain)
		}
	}

	// assignment decodes the row number into one input value per
	// input register.
	assignment := func(row int) []Value {
		elems := make([]uint64, len(elements))
		for i := len(elements) - 1; i >= 0; i-- {
			n := len(elements[i].domain)
			elems[i] = elements[i].domain[row%n]
			row /= n
		}
		result := make([]Value, len(tt.ins))
		pos := 0
		for regIdx, reg := range tt.ins {
			count := reg.NumElements()
			result[regIdx] = fromFlat(reg.Shape, elems[pos:pos+count])
			pos += count
		}
		return result
	}

	tt.rows = make([]Row, numRows)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for row := 0; row < numRows; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ins := assignment(row)
			vals := make(Vals)
			for i, reg := range tt.ins {
				vals[reg.Name] = ins[i]
			}
			outs, err := Call(b, vals)
			if err != nil {
				return err
			}
			tt.rows[row] = Row{
				Ins:  ins,
				Outs: outs,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tt, nil
}

// Rows returns the truth table rows in enumeration order.
func (tt *TruthTable) Rows() []Row {
	return tt.rows
}

// Format renders the truth table as plain text:
//
//	q  |  q
//	--------
//	0 -> 0
//	1 -> 1
func (tt *TruthTable) Format() string {
	var inNames, outNames []string
	for _, reg := range tt.ins {
		inNames = append(inNames, reg.Name)
	}
	for _, reg := range tt.outs {
		outNames = append(outNames, reg.Name)
	}
	heading := strings.Join(inNames, ", ") + "  |  " +
		strings.Join(outNames, ", ")

	var sb strings.Builder
	sb.WriteString(heading)
	sb.WriteRune('\n')
	sb.WriteString(strings.Repeat("-", len(heading)+1))
	sb.WriteRune('\n')

	for _, row := range tt.rows {
		var ins, outs []string
		for i, v := range row.Ins {
			ins = append(ins, v.Format(tt.ins[i].Dtype))
		}
		for i, v := range row.Outs {
			outs = append(outs, v.Format(tt.outs[i].Dtype))
		}
		sb.WriteString(strings.Join(ins, ", "))
		sb.WriteString(" -> ")
		sb.WriteString(strings.Join(outs, ", "))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Render renders the truth table as a table. The output register
// columns are marked with a prime.
func (tt *TruthTable) Render(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	for _, reg := range tt.ins {
		tab.Header(reg.Name).SetAlign(tabulate.MR)
	}
	for _, reg := range tt.outs {
		tab.Header(reg.Name + "'").SetAlign(tabulate.MR)
	}
	for _, row := range tt.rows {
		r := tab.Row()
		for i, v := range row.Ins {
			r.Column(v.Format(tt.ins[i].Dtype))
		}
		for i, v := range row.Outs {
			r.Column(v.Format(tt.outs[i].Dtype))
		}
	}
	tab.Print(w)
}
