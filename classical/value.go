//
// value.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package classical

import (
	"fmt"
	"strings"

	"github.com/markkurossi/bloq"
	"github.com/markkurossi/bloq/qdt"
)

// Value is a classical register value: a scalar or a shaped array of
// raw full-width two's-complement bit patterns. The numeric
// interpretation of the patterns comes from the register data type
// they are checked against.
type Value struct {
	shape []int
	data  []uint64
}

// Vals assigns classical values to register names.
type Vals map[string]Value

// Scalar creates a scalar value from an unsigned integer.
func Scalar(v uint64) Value {
	return Value{
		data: []uint64{v},
	}
}

// ScalarInt creates a scalar value from a signed integer.
func ScalarInt(v int64) Value {
	return Value{
		data: []uint64{uint64(v)},
	}
}

// BitArray creates a one-dimensional array value from the bits.
func BitArray(bits ...uint8) Value {
	data := make([]uint64, len(bits))
	for i, b := range bits {
		data[i] = uint64(b)
	}
	return Value{
		shape: []int{len(bits)},
		data:  data,
	}
}

// Array creates a shaped array value from the elements in row-major
// order.
func Array(shape []int, elems ...uint64) (Value, error) {
	if len(elems) != bloq.Prod(shape) {
		return Value{}, fmt.Errorf("got %d elements for shape %v",
			len(elems), shape)
	}
	return Value{
		shape: append([]int(nil), shape...),
		data:  append([]uint64(nil), elems...),
	}, nil
}

// fromFlat creates a value of the shape from the row-major elements.
// The caller guarantees that the element count matches the shape.
func fromFlat(shape []int, elems []uint64) Value {
	return Value{
		shape: append([]int(nil), shape...),
		data:  append([]uint64(nil), elems...),
	}
}

// IsScalar tests if the value is a scalar.
func (v Value) IsScalar() bool {
	return len(v.shape) == 0 && len(v.data) == 1
}

// Shape returns the array shape of the value.
func (v Value) Shape() []int {
	return append([]int(nil), v.shape...)
}

// Len returns the number of elements in the value.
func (v Value) Len() int {
	return len(v.data)
}

// Uint returns the raw pattern of a scalar value as an unsigned
// integer. It panics if the value is not scalar.
func (v Value) Uint() uint64 {
	if len(v.data) != 1 || len(v.shape) != 0 {
		panic(fmt.Sprintf("Uint of non-scalar value, shape %v", v.shape))
	}
	return v.data[0]
}

// Int returns the raw pattern of a scalar value as a signed integer.
// It panics if the value is not scalar.
func (v Value) Int() int64 {
	return int64(v.Uint())
}

// At returns the raw pattern of the element at the
// multi-dimensional index.
func (v Value) At(idx ...int) uint64 {
	return v.data[bloq.FlatIndex(v.shape, idx...)]
}

// Flat returns the raw element patterns in row-major order.
func (v Value) Flat() []uint64 {
	return append([]uint64(nil), v.data...)
}

// Equal tests if the values have the same shape and elements.
func (v Value) Equal(o Value) bool {
	if !bloq.ShapeEq(v.shape, o.shape) {
		return false
	}
	for i, d := range v.data {
		if o.data[i] != d {
			return false
		}
	}
	return true
}

// Format renders the value according to the data type's numeric
// interpretation. Arrays are rendered in brackets with
// space-separated elements.
func (v Value) Format(dt qdt.Info) string {
	if v.IsScalar() {
		return dt.Format(v.data[0])
	}
	var render func(shape, idx []int) string
	render = func(shape, idx []int) string {
		var sb strings.Builder
		sb.WriteRune('[')
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteRune(' ')
			}
			at := append(append([]int(nil), idx...), i)
			if len(shape) > 1 {
				sb.WriteString(render(shape[1:], at))
			} else {
				sb.WriteString(dt.Format(v.At(at...)))
			}
		}
		sb.WriteRune(']')
		return sb.String()
	}
	return render(v.shape, nil)
}

func (v Value) String() string {
	return v.Format(qdt.Any(64))
}

// checkRegister verifies that the value matches the register: its
// shape equals the register shape and every element is inside the
// register data type's domain.
func checkRegister(reg bloq.Register, v Value) error {
	if !bloq.ShapeEq(v.Shape(), reg.Shape) || v.Len() != reg.NumElements() {
		return fmt.Errorf("incorrect shape %v for register %s, want %v",
			v.Shape(), reg.Name, reg.Shape)
	}
	for _, raw := range v.data {
		if err := reg.Dtype.Validate(raw); err != nil {
			return fmt.Errorf("register %s: %s", reg.Name, err)
		}
	}
	return nil
}
