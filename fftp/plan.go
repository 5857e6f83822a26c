// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fftp implements the distributed transform between physical row
// slabs and spectral column slabs. Transforms are unnormalized: a forward
// followed by an inverse multiplies the field by n². Every transform is a
// synchronization point of the whole group.
package fftp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mjibson/go-dsp/fft"

	"github.com/AlexJamesWright/GHOST/comm"
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
)

// Plan holds the scratch buffers and the transpose schedule of one rank. A
// plan is created once per run and reused by every transform.
type Plan struct {

	// access
	G   *grid.Grid   // wavenumber tables
	Dec *grid.Decomp // this rank's ranges
	Grp comm.Group   // the rank group
	Nw  int          // worker goroutines for loop nests

	// transpose schedule
	decs []*grid.Decomp // ranges of every rank, derived locally

	// scratch
	rows    [][]complex128 // [nj][n/2+1] row-major intermediate
	cols    [][]complex128 // [ni][n] column-major intermediate
	fwdSend [][]float64
	fwdRecv [][]float64
	invSend [][]float64
	invRecv [][]float64
}

// NewPlan allocates the scratch space of one rank. nw sets the number of
// worker goroutines used by the serial transform passes.
func NewPlan(g *grid.Grid, dec *grid.Decomp, grp comm.Group, nw int) (o *Plan) {
	if grp.Size() != dec.Nproc || grp.Rank() != dec.Proc {
		chk.Panic("plan group (%d/%d) does not match decomposition (%d/%d)", grp.Rank(), grp.Size(), dec.Proc, dec.Nproc)
	}
	if nw < 1 {
		nw = 1
	}
	o = new(Plan)
	o.G = g
	o.Dec = dec
	o.Grp = grp
	o.Nw = nw
	n := dec.N
	np := dec.Nproc

	o.decs = make([]*grid.Decomp, np)
	for r := 0; r < np; r++ {
		o.decs[r] = grid.NewDecomp(n, np, r)
	}

	o.rows = make([][]complex128, dec.Nj())
	for rj := range o.rows {
		o.rows[rj] = make([]complex128, n/2+1)
	}
	o.cols = make([][]complex128, dec.Ni())
	for ci := range o.cols {
		o.cols[ci] = make([]complex128, n)
	}

	o.fwdSend = make([][]float64, np)
	o.fwdRecv = make([][]float64, np)
	o.invSend = make([][]float64, np)
	o.invRecv = make([][]float64, np)
	for r := 0; r < np; r++ {
		o.fwdSend[r] = make([]float64, 2*dec.Nj()*o.decs[r].Ni())
		o.fwdRecv[r] = make([]float64, 2*o.decs[r].Nj()*dec.Ni())
		o.invSend[r] = make([]float64, 2*dec.Ni()*o.decs[r].Nj())
		o.invRecv[r] = make([]float64, 2*o.decs[r].Ni()*dec.Nj())
	}

	fft.SetWorkerPoolSize(nw)
	return
}

// Forward transforms the physical rows p into the spectral columns s,
// overwriting s. p is preserved.
func (o *Plan) Forward(p *field.Physical, s *field.Spectral) {
	n := o.Dec.N
	nh := n/2 + 1

	// transform owned rows and keep the half axis
	field.ForRows(o.Dec.Nj(), o.Nw, func(lo, hi int) {
		buf := make([]complex128, n)
		for rj := lo; rj < hi; rj++ {
			for i := 0; i < n; i++ {
				buf[i] = complex(p.R[rj][i], 0)
			}
			out := fft.FFT(buf)
			copy(o.rows[rj], out[:nh])
		}
	})

	// row slab to column slab
	for r := range o.decs {
		d := o.decs[r]
		b := o.fwdSend[r]
		idx := 0
		for rj := 0; rj < o.Dec.Nj(); rj++ {
			for i := d.Ista; i <= d.Iend; i++ {
				b[idx] = real(o.rows[rj][i])
				b[idx+1] = imag(o.rows[rj][i])
				idx += 2
			}
		}
	}
	o.Grp.Exchange(o.fwdSend, o.fwdRecv)
	for r := range o.decs {
		d := o.decs[r]
		b := o.fwdRecv[r]
		idx := 0
		for rjr := 0; rjr < d.Nj(); rjr++ {
			j := d.Jsta + rjr
			for ci := 0; ci < o.Dec.Ni(); ci++ {
				o.cols[ci][j] = complex(b[idx], b[idx+1])
				idx += 2
			}
		}
	}

	// transform owned columns along the second axis
	field.ForRows(o.Dec.Ni(), o.Nw, func(lo, hi int) {
		for ci := lo; ci < hi; ci++ {
			out := fft.FFT(o.cols[ci])
			copy(s.C[ci], out)
		}
	})
}

// Inverse transforms the spectral columns s into the physical rows p,
// overwriting p. s is preserved.
func (o *Plan) Inverse(s *field.Spectral, p *field.Physical) {
	n := o.Dec.N
	scale := complex(float64(n), 0)

	// unnormalized inverse along the second axis
	field.ForRows(o.Dec.Ni(), o.Nw, func(lo, hi int) {
		for ci := lo; ci < hi; ci++ {
			out := fft.IFFT(s.C[ci])
			for j := 0; j < n; j++ {
				o.cols[ci][j] = out[j] * scale
			}
		}
	})

	// column slab to row slab
	for r := range o.decs {
		d := o.decs[r]
		b := o.invSend[r]
		idx := 0
		for ci := 0; ci < o.Dec.Ni(); ci++ {
			for j := d.Jsta; j <= d.Jend; j++ {
				b[idx] = real(o.cols[ci][j])
				b[idx+1] = imag(o.cols[ci][j])
				idx += 2
			}
		}
	}
	o.Grp.Exchange(o.invSend, o.invRecv)
	for r := range o.decs {
		d := o.decs[r]
		b := o.invRecv[r]
		idx := 0
		for cir := 0; cir < d.Ni(); cir++ {
			i := d.Ista + cir
			for rj := 0; rj < o.Dec.Nj(); rj++ {
				o.rows[rj][i] = complex(b[idx], b[idx+1])
				idx += 2
			}
		}
	}

	// expand the half axis by Hermitian symmetry and invert along it
	field.ForRows(o.Dec.Nj(), o.Nw, func(lo, hi int) {
		buf := make([]complex128, n)
		for rj := lo; rj < hi; rj++ {
			buf[0] = o.rows[rj][0]
			for i := 1; i <= n/2; i++ {
				buf[i] = o.rows[rj][i]
				if i < n/2 {
					buf[n-i] = complex(real(o.rows[rj][i]), -imag(o.rows[rj][i]))
				}
			}
			out := fft.IFFT(buf)
			for i := 0; i < n; i++ {
				p.R[rj][i] = real(out[i]) * float64(n)
			}
		}
	})
}
