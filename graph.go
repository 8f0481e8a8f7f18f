//
// graph.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"fmt"
	"strings"

	"github.com/markkurossi/text/superscript"
)

// Prod returns the number of elements in an array of the shape. The
// empty shape describes a scalar and has one element.
func Prod(shape []int) int {
	result := 1
	for _, dim := range shape {
		result *= dim
	}
	return result
}

// FlatIndex converts the multi-dimensional index idx into a
// row-major flat index within the shape. It panics if the index does
// not match the shape.
func FlatIndex(shape []int, idx ...int) int {
	if len(idx) != len(shape) {
		panic(fmt.Sprintf("index %v does not match shape %v", idx, shape))
	}
	result := 0
	for i, dim := range shape {
		if idx[i] < 0 || idx[i] >= dim {
			panic(fmt.Sprintf("index %v out of shape %v", idx, shape))
		}
		result = result*dim + idx[i]
	}
	return result
}

// IdxFromFlat converts the row-major flat index into a
// multi-dimensional index within the shape.
func IdxFromFlat(shape []int, flat int) []int {
	idx := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		idx[i] = flat % shape[i]
		flat /= shape[i]
	}
	return idx
}

// ShapeEq tests if the shapes are equal. Nil and empty shapes are
// equal.
func ShapeEq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// InstanceID identifies a bloq instance within a composite. The IDs
// of real instances are non-negative and assigned in the order the
// instances were added. The negative values are reserved for the
// virtual boundary nodes.
type InstanceID int

// Virtual boundary nodes. LeftDangle produces the soquets of the
// composite's input registers and RightDangle consumes the soquets
// of its output registers.
const (
	LeftDangle  InstanceID = -1
	RightDangle InstanceID = -2
)

// IsDangling tests if the ID names a virtual boundary node.
func (id InstanceID) IsDangling() bool {
	return id < 0
}

func (id InstanceID) String() string {
	switch id {
	case LeftDangle:
		return "LeftDangle"
	case RightDangle:
		return "RightDangle"
	default:
		return fmt.Sprintf("#%d", int(id))
	}
}

// BloqInstance is one occurrence of a bloq inside a composite. The
// same bloq value can occur as any number of instances.
type BloqInstance struct {
	ID   InstanceID
	Bloq Bloq
}

func (bi BloqInstance) String() string {
	return bi.Bloq.String() + superscript.Itoa(int(bi.ID))
}

// Soquet names one wire endpoint: the element Idx of the register
// Reg of the instance Binst. Idx is the row-major flat index within
// the register shape and is 0 for scalar registers. Soquets are
// comparable and usable as map keys.
type Soquet struct {
	Binst InstanceID
	Reg   string
	Idx   int
}

func (s Soquet) String() string {
	var sb strings.Builder
	sb.WriteString(s.Binst.String())
	sb.WriteRune('.')
	sb.WriteString(s.Reg)
	if s.Idx > 0 {
		fmt.Fprintf(&sb, "[%d]", s.Idx)
	}
	return sb.String()
}

// Soquets is a shaped array of soquets. The zero value is the empty
// array. A builder hands out Soquets for each register of an added
// bloq, shaped like the register.
type Soquets struct {
	shape []int
	soqs  []Soquet
}

// Single wraps the soquet into a scalar Soquets.
func Single(s Soquet) Soquets {
	return Soquets{
		soqs: []Soquet{s},
	}
}

// NewSoquets creates a shaped array of the soquets. The number of
// soquets must match the shape.
func NewSoquets(shape []int, soqs ...Soquet) (Soquets, error) {
	if len(soqs) != Prod(shape) {
		return Soquets{}, fmt.Errorf("got %d soquets for shape %v",
			len(soqs), shape)
	}
	return Soquets{
		shape: append([]int(nil), shape...),
		soqs:  append([]Soquet(nil), soqs...),
	}, nil
}

// soquetsFor enumerates the soquets of the register on the instance.
func soquetsFor(binst InstanceID, reg Register) Soquets {
	count := reg.NumElements()
	soqs := make([]Soquet, count)
	for i := 0; i < count; i++ {
		soqs[i] = Soquet{
			Binst: binst,
			Reg:   reg.Name,
			Idx:   i,
		}
	}
	return Soquets{
		shape: append([]int(nil), reg.Shape...),
		soqs:  soqs,
	}
}

// IsScalar tests if the array holds exactly one scalar soquet.
func (s Soquets) IsScalar() bool {
	return len(s.shape) == 0 && len(s.soqs) == 1
}

// Len returns the number of soquets in the array.
func (s Soquets) Len() int {
	return len(s.soqs)
}

// Shape returns the array shape.
func (s Soquets) Shape() []int {
	return append([]int(nil), s.shape...)
}

// One returns the single soquet of a scalar array. It panics if the
// array is not scalar.
func (s Soquets) One() Soquet {
	if !s.IsScalar() {
		panic(fmt.Sprintf("One of non-scalar soquets, shape %v", s.shape))
	}
	return s.soqs[0]
}

// At returns the soquet at the multi-dimensional index.
func (s Soquets) At(idx ...int) Soquet {
	return s.soqs[FlatIndex(s.shape, idx...)]
}

// Flat returns the soquets in row-major order.
func (s Soquets) Flat() []Soquet {
	return append([]Soquet(nil), s.soqs...)
}

// Connection is a directed wire between two soquets: the data flows
// from Left to Right.
type Connection struct {
	Left  Soquet
	Right Soquet
}

func (c Connection) String() string {
	return fmt.Sprintf("%s -> %s", c.Left, c.Right)
}
