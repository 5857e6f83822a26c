// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements wavenumber tables and the slab decomposition of
// doubly periodic pseudo-spectral domains
package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Decomp holds the portion of the domain owned by one rank. Spectral fields
// are split along the first (half) wavenumber axis into columns, physical
// fields along the second axis into rows. Both splits are contiguous and
// deterministic for a given (n, nproc) pair.
type Decomp struct {

	// input
	N     int // number of grid points along each axis
	Nproc int // number of ranks in the group
	Proc  int // this rank

	// derived
	Ista int // first owned spectral column (inclusive, zero-based)
	Iend int // last owned spectral column (inclusive)
	Jsta int // first owned physical row (inclusive, zero-based)
	Jend int // last owned physical row (inclusive)
}

// Range partitions the inclusive interval [n1,n2] into nprocs contiguous
// blocks and returns the block of rank irank. Block sizes differ by at most
// one and earlier ranks take the larger shares. A rank beyond the number of
// available indices gets an empty block (iend < ista).
func Range(n1, n2, nprocs, irank int) (ista, iend int) {
	work := (n2 - n1 + 1) / nprocs
	rest := (n2 - n1 + 1) % nprocs
	ista = irank*work + n1
	if irank < rest {
		ista += irank
	} else {
		ista += rest
	}
	iend = ista + work - 1
	if irank < rest {
		iend++
	}
	return
}

// NewDecomp computes the slab ranges of rank proc within a group of nproc
// ranks over an n×n domain. n must be even and at least 4.
func NewDecomp(n, nproc, proc int) (o *Decomp) {
	if n < 4 || n%2 != 0 {
		chk.Panic("domain size n must be even and at least 4. n=%d is invalid", n)
	}
	if nproc < 1 || proc < 0 || proc >= nproc {
		chk.Panic("invalid rank/group pair: proc=%d nproc=%d", proc, nproc)
	}
	o = new(Decomp)
	o.N = n
	o.Nproc = nproc
	o.Proc = proc
	o.Ista, o.Iend = Range(0, n/2, nproc, proc)
	o.Jsta, o.Jend = Range(0, n-1, nproc, proc)
	return
}

// Ni returns the number of locally owned spectral columns
func (o *Decomp) Ni() int {
	if o.Iend < o.Ista {
		return 0
	}
	return o.Iend - o.Ista + 1
}

// Nj returns the number of locally owned physical rows
func (o *Decomp) Nj() int {
	if o.Jend < o.Jsta {
		return 0
	}
	return o.Jend - o.Jsta + 1
}

// String returns a one-line description of the owned ranges
func (o *Decomp) String() string {
	return io.Sf("rank %d/%d: i=[%d,%d] j=[%d,%d]", o.Proc, o.Nproc, o.Ista, o.Iend, o.Jsta, o.Jend)
}
