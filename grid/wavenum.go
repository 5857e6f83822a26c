// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Grid holds the wavenumber tables of an n×n periodic domain in the standard
// transform ordering together with the squared magnitudes over the spectral
// slab owned by one rank.
type Grid struct {

	// input
	N int // number of grid points along each axis

	// derived
	Ka   []float64   // wavenumbers along one full axis: 0, 1, ..., n/2-1, -n/2, ..., -1
	Ka2  [][]float64 // [ni][n] squared wavenumber magnitude; ci-th row maps to global column Ista+ci
	Kmax float64     // squared two-thirds dealiasing threshold: (n/3)²
	Tiny float64     // squared floor excluding the k=0 mode
}

// New computes the wavenumber tables for the slab owned by dec
func New(dec *Decomp) (o *Grid) {
	n := dec.N
	o = new(Grid)
	o.N = n
	o.Ka = make([]float64, n)
	for m := 0; m < n; m++ {
		if m < n/2 {
			o.Ka[m] = float64(m)
		} else {
			o.Ka[m] = float64(m - n)
		}
	}
	o.Ka2 = la.MatAlloc(dec.Ni(), n)
	for ci := 0; ci < dec.Ni(); ci++ {
		kx := o.Ka[dec.Ista+ci]
		for j := 0; j < n; j++ {
			o.Ka2[ci][j] = kx*kx + o.Ka[j]*o.Ka[j]
		}
	}
	o.Kmax = math.Pow(float64(n)/3.0, 2.0)
	o.Tiny = 1e-5
	return
}

// InBand tells whether a squared wavenumber magnitude survives both the
// dealiasing truncation and the zero-mode floor
func (o *Grid) InBand(k2 float64) bool {
	return k2 >= o.Tiny && k2 < o.Kmax
}
