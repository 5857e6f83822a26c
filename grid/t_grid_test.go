// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_range01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("range01. block partition: coverage and balance")

	for _, data := range []struct {
		n1, n2, np int
	}{
		{0, 16, 4},  // even split
		{0, 16, 3},  // remainder
		{0, 8, 3},   // half axis of n=16
		{0, 31, 5},  // physical axis of n=32
		{1, 7, 7},   // one index per rank
		{0, 3, 6},   // more ranks than indices
		{5, 23, 4},  // offset interval
		{0, 128, 7}, // larger case
	} {
		total := data.n2 - data.n1 + 1
		covered := 0
		prevEnd := data.n1 - 1
		maxSize, minSize := 0, total+1
		for rank := 0; rank < data.np; rank++ {
			ista, iend := Range(data.n1, data.n2, data.np, rank)
			size := iend - ista + 1
			if size < 0 {
				size = 0
			}
			if size > 0 {
				if ista != prevEnd+1 {
					tst.Errorf("blocks are not contiguous: rank %d starts at %d after %d", rank, ista, prevEnd)
					return
				}
				prevEnd = iend
			}
			covered += size
			if size > maxSize {
				maxSize = size
			}
			if size < minSize {
				minSize = size
			}
		}
		io.Pf("[%d,%d] over %d ranks: sizes in [%d,%d]\n", data.n1, data.n2, data.np, minSize, maxSize)
		chk.IntAssert(covered, total)
		chk.IntAssert(prevEnd, data.n2)
		if maxSize-minSize > 1 {
			tst.Errorf("block sizes differ by more than one: min=%d max=%d", minSize, maxSize)
			return
		}
	}
}

func Test_range02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("range02. earlier ranks take the remainder")

	// 17 indices over 5 ranks: sizes 4,4,3,3,3
	sizes := []int{}
	for rank := 0; rank < 5; rank++ {
		ista, iend := Range(0, 16, 5, rank)
		sizes = append(sizes, iend-ista+1)
	}
	chk.Ints(tst, "sizes", sizes, []int{4, 4, 3, 3, 3})

	ista, iend := Range(0, 16, 5, 0)
	chk.IntAssert(ista, 0)
	chk.IntAssert(iend, 3)
	ista, iend = Range(0, 16, 5, 4)
	chk.IntAssert(ista, 14)
	chk.IntAssert(iend, 16)
}

func Test_decomp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decomp01. slab ranges for nproc not dividing n")

	n := 32
	for _, np := range []int{1, 2, 3, 5, 8} {
		icov, jcov := 0, 0
		for proc := 0; proc < np; proc++ {
			d := NewDecomp(n, np, proc)
			icov += d.Ni()
			jcov += d.Nj()
		}
		io.Pf("nproc=%d: spectral cover=%d physical cover=%d\n", np, icov, jcov)
		chk.IntAssert(icov, n/2+1)
		chk.IntAssert(jcov, n)
	}

	// serial limit owns everything
	d := NewDecomp(n, 1, 0)
	chk.IntAssert(d.Ista, 0)
	chk.IntAssert(d.Iend, n/2)
	chk.IntAssert(d.Jsta, 0)
	chk.IntAssert(d.Jend, n-1)
}

func Test_wnum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wnum01. wavenumber ordering")

	d := NewDecomp(8, 1, 0)
	g := New(d)
	chk.Vector(tst, "ka", 1e-17, g.Ka, []float64{0, 1, 2, 3, -4, -3, -2, -1})
	chk.Float64(tst, "kmax", 1e-14, g.Kmax, 64.0/9.0)

	// squared magnitudes on the serial slab
	chk.Float64(tst, "ka2[0][0]", 1e-17, g.Ka2[0][0], 0)
	chk.Float64(tst, "ka2[1][0]", 1e-17, g.Ka2[1][0], 1)
	chk.Float64(tst, "ka2[1][5]", 1e-17, g.Ka2[1][5], 1+9)
	chk.Float64(tst, "ka2[4][4]", 1e-17, g.Ka2[4][4], 16+16)
}

func Test_wnum02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wnum02. distributed slabs agree with the serial table")

	n, np := 16, 3
	ser := New(NewDecomp(n, 1, 0))
	for proc := 0; proc < np; proc++ {
		d := NewDecomp(n, np, proc)
		g := New(d)
		for ci := 0; ci < d.Ni(); ci++ {
			for j := 0; j < n; j++ {
				chk.Float64(tst, io.Sf("ka2 i=%d j=%d", d.Ista+ci, j), 1e-17, g.Ka2[ci][j], ser.Ka2[d.Ista+ci][j])
			}
		}
	}
}

func Test_band01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("band01. dealiasing band membership")

	g := New(NewDecomp(32, 1, 0))
	if g.InBand(0) {
		tst.Errorf("k2=0 must be excluded by the floor")
		return
	}
	if !g.InBand(1) {
		tst.Errorf("k2=1 must be inside the band")
		return
	}
	if g.InBand(g.Kmax) {
		tst.Errorf("k2=kmax must be excluded by the truncation")
		return
	}
	if !g.InBand(g.Kmax - 1) {
		tst.Errorf("k2 just below kmax must be kept")
		return
	}
}
