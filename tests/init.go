// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements helpers to test complete runs
package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/AlexJamesWright/GHOST/field"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Merge joins the spectral slabs of the ranks of one run into a full
// half-spectrum array indexed by the global column
func Merge(parts []*field.Spectral) (full [][]complex128) {
	n := parts[0].Dec.N
	full = make([][]complex128, n/2+1)
	for gi := range full {
		full[gi] = make([]complex128, n)
	}
	for _, p := range parts {
		for ci := 0; ci < p.Dec.Ni(); ci++ {
			copy(full[p.Dec.Ista+ci], p.C[ci])
		}
	}
	return
}
