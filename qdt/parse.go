//
// parse.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package qdt

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reSized = regexp.MustCompilePOSIX(`^([[:alpha:]]+)([[:digit:]]*)$`)
	reFxp   = regexp.MustCompilePOSIX(`^fxp([[:digit:]]+)\.([[:digit:]]+)$`)
)

// Parse parses a type definition and returns its type information.
// The syntax is the inverse of Info.String: "bit", "any37", "u8",
// "i6", "fxp8.4". The long kind names "uint" and "int" are accepted
// as aliases for "u" and "i".
func Parse(val string) (info Info, err error) {
	m := reFxp.FindStringSubmatch(val)
	if m != nil {
		var bits, frac int64
		bits, err = strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			return
		}
		frac, err = strconv.ParseInt(m[2], 10, 32)
		if err != nil {
			return
		}
		info = Fxp(int(bits), int(frac))
		return info, info.Check()
	}

	m = reSized.FindStringSubmatch(val)
	if m == nil {
		return info, fmt.Errorf("qdt.Parse: unknown type: %s", val)
	}
	switch m[1] {
	case "b", "bit":
		if len(m[2]) > 0 {
			return info, fmt.Errorf("qdt.Parse: bit type takes no width: %s",
				val)
		}
		return Bit(), nil

	case "any":
		info.Kind = KAny

	case "u", "uint":
		info.Kind = KUInt

	case "i", "int":
		info.Kind = KInt

	default:
		return info, fmt.Errorf("qdt.Parse: unknown type: %s", val)
	}
	if len(m[2]) == 0 {
		return info, fmt.Errorf("qdt.Parse: %s requires a bit width: %s",
			m[1], val)
	}
	bits, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return info, err
	}
	info.Bits = int(bits)
	return info, info.Check()
}
