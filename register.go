//
// register.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"fmt"
	"sort"
	"strings"

	"github.com/markkurossi/bloq/qdt"
)

// Side specifies on which side of a bloq a register exists. A LEFT
// register is consumed by the bloq, a RIGHT register is produced, and
// a THRU register is both consumed and produced. The values form a
// bitmask so THRU acts as LEFT and RIGHT at the same time.
type Side uint8

// Register sides.
const (
	SideLeft  Side = 1 << iota // consumed
	SideRight                  // produced
	SideThru  = SideLeft | SideRight
)

// IsLeft tests if the side acts as an input side.
func (s Side) IsLeft() bool {
	return s&SideLeft != 0
}

// IsRight tests if the side acts as an output side.
func (s Side) IsRight() bool {
	return s&SideRight != 0
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	case SideThru:
		return "THRU"
	default:
		return fmt.Sprintf("{Side %d}", int(s))
	}
}

// Register defines one named port group of a bloq. The register
// carries Prod(Shape) wires, each Dtype.Bits bits wide. A nil or
// empty Shape means a single scalar wire.
type Register struct {
	Name  string
	Dtype qdt.Info
	Shape []int
	Side  Side
}

// NewRegister creates a scalar THRU register.
func NewRegister(name string, dt qdt.Info) Register {
	return Register{
		Name:  name,
		Dtype: dt,
		Side:  SideThru,
	}
}

// NewArrayRegister creates a THRU register holding a shaped array of
// wires.
func NewArrayRegister(name string, dt qdt.Info, shape ...int) Register {
	return Register{
		Name:  name,
		Dtype: dt,
		Shape: shape,
		Side:  SideThru,
	}
}

// WithSide returns a copy of the register with the side set to s.
func (r Register) WithSide(s Side) Register {
	r.Side = s
	return r
}

// NumElements returns the number of wires in the register.
func (r Register) NumElements() int {
	return Prod(r.Shape)
}

// TotalBits returns the total number of bits the register carries
// over all of its wires.
func (r Register) TotalBits() int {
	return r.Dtype.Bits * r.NumElements()
}

// Check verifies that the register definition is valid.
func (r Register) Check() error {
	if len(r.Name) == 0 {
		return fmt.Errorf("register has no name")
	}
	if err := r.Dtype.Check(); err != nil {
		return fmt.Errorf("register %s: %s", r.Name, err)
	}
	for _, dim := range r.Shape {
		if dim <= 0 {
			return fmt.Errorf("register %s: invalid shape %v", r.Name, r.Shape)
		}
	}
	switch r.Side {
	case SideLeft, SideRight, SideThru:
	default:
		return fmt.Errorf("register %s: invalid side %d", r.Name, int(r.Side))
	}
	return nil
}

func (r Register) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteRune(':')
	sb.WriteString(r.Dtype.String())
	if len(r.Shape) > 0 {
		fmt.Fprintf(&sb, "%v", r.Shape)
	}
	if r.Side != SideThru {
		sb.WriteRune('/')
		sb.WriteString(r.Side.String())
	}
	return sb.String()
}

// Signature is an ordered collection of registers defining the
// data-flow interface of a bloq. Register names are unique within a
// signature, except that a LEFT register and a RIGHT register may
// share a name: the bloq consumes the register in one form and
// produces it in another.
type Signature struct {
	regs []Register
}

// NewSignature creates a signature from the registers. It verifies
// each register and rejects duplicate register names.
func NewSignature(regs ...Register) (Signature, error) {
	seen := make(map[string]Side)
	for _, reg := range regs {
		if err := reg.Check(); err != nil {
			return Signature{}, err
		}
		old, ok := seen[reg.Name]
		if ok && (old|reg.Side != SideThru || old&reg.Side != 0) {
			return Signature{},
				fmt.Errorf("duplicate register name: %s", reg.Name)
		}
		seen[reg.Name] = old | reg.Side
	}
	return Signature{
		regs: append([]Register(nil), regs...),
	}, nil
}

// MustSignature is like NewSignature but panics on invalid register
// definitions. It is intended for bloq constructors whose registers
// are fixed at compile time.
func MustSignature(regs ...Register) Signature {
	sig, err := NewSignature(regs...)
	if err != nil {
		panic(err)
	}
	return sig
}

// BuildSignature creates a signature of scalar THRU registers of
// untyped bits, one register per entry in the widths map. The
// registers are ordered by name.
func BuildSignature(widths map[string]int) (Signature, error) {
	names := make([]string, 0, len(widths))
	for name := range widths {
		names = append(names, name)
	}
	sort.Strings(names)

	var regs []Register
	for _, name := range names {
		regs = append(regs, NewRegister(name, qdt.Any(widths[name])))
	}
	return NewSignature(regs...)
}

// Len returns the number of registers in the signature.
func (sig Signature) Len() int {
	return len(sig.regs)
}

// All returns the registers in definition order.
func (sig Signature) All() []Register {
	return append([]Register(nil), sig.regs...)
}

// Lefts returns the registers that act as inputs i.e. the LEFT and
// THRU registers in definition order.
func (sig Signature) Lefts() []Register {
	var result []Register
	for _, reg := range sig.regs {
		if reg.Side.IsLeft() {
			result = append(result, reg)
		}
	}
	return result
}

// Rights returns the registers that act as outputs i.e. the RIGHT
// and THRU registers in definition order.
func (sig Signature) Rights() []Register {
	var result []Register
	for _, reg := range sig.regs {
		if reg.Side.IsRight() {
			result = append(result, reg)
		}
	}
	return result
}

// NumQubits returns the number of qubits the bloq acts on i.e. the
// larger of the total left and right interface widths.
func (sig Signature) NumQubits() int {
	var lefts, rights int
	for _, reg := range sig.regs {
		if reg.Side.IsLeft() {
			lefts += reg.TotalBits()
		}
		if reg.Side.IsRight() {
			rights += reg.TotalBits()
		}
	}
	if lefts > rights {
		return lefts
	}
	return rights
}

// Get returns the named register.
func (sig Signature) Get(name string) (Register, bool) {
	for _, reg := range sig.regs {
		if reg.Name == name {
			return reg, true
		}
	}
	return Register{}, false
}

func (sig Signature) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for idx, reg := range sig.regs {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(reg.String())
	}
	sb.WriteRune(')')
	return sb.String()
}
