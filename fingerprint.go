//
// fingerprint.go
//
// Copyright (c) 2024-2025 Markku Rossi
//
// All rights reserved.
//

package bloq

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Fingerprint is a SHA3-256 digest identifying the structure of a
// composite bloq.
type Fingerprint [32]byte

func (f Fingerprint) String() string {
	return fmt.Sprintf("%x", f[:])
}

// Fingerprint computes a structural digest of the composite. Two
// composites have the same fingerprint if they have the same
// signature and the same instances wired the same way. Sub-bloqs are
// identified by their name and signature; nested composites are
// digested recursively.
func (cb *CompositeBloq) Fingerprint() Fingerprint {
	d := sha3.New256()

	fmt.Fprintf(d, "sig:%s\n", cb.sig)
	for _, bi := range cb.insts {
		if sub, ok := bi.Bloq.(*CompositeBloq); ok {
			fmt.Fprintf(d, "inst:%d:composite:%s\n",
				int(bi.ID), sub.Fingerprint())
		} else {
			fmt.Fprintf(d, "inst:%d:%s%s\n",
				int(bi.ID), bi.Bloq, bi.Bloq.Signature())
		}
	}
	for _, cxn := range cb.cxns {
		fmt.Fprintf(d, "cxn:%d.%s.%d>%d.%s.%d\n",
			int(cxn.Left.Binst), cxn.Left.Reg, cxn.Left.Idx,
			int(cxn.Right.Binst), cxn.Right.Reg, cxn.Right.Idx)
	}

	var result Fingerprint
	copy(result[:], d.Sum(nil))
	return result
}
