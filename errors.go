//
// errors.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"errors"
	"fmt"
)

// ErrAtomic is reported when an intrinsically indivisible bloq is
// asked to decompose. Callers can test for it with errors.Is and fall
// back to atomic-level handling.
var ErrAtomic = errors.New("cannot decompose atomic bloq")

// ErrWiring is the category error wrapped by all wiring faults:
// connecting ports of mismatched widths, consuming a soquet twice,
// finalizing a builder with unwired registers, and malformed
// composite graphs.
var ErrWiring = errors.New("invalid wiring")

// wireErrorf returns a wiring error with the formatted detail.
func wireErrorf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrWiring, fmt.Sprintf(format, a...))
}
