// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
)

// Stepper advances the evolved fields with the low-storage Runge-Kutta
// recursion of order ord:
//
//   u⁰ = u(t)
//   uᵒ = u(t) + dt/o · rhs(uᵒ⁻¹)      o = ord, ord-1, ..., 1
//
// Applied to a linear decay rate λ the recursion reproduces the exponential
// up to the term (λ dt)ᵒʳᵈ/ord!. Modes outside the resolved band are zeroed
// at every substep.
type Stepper struct {

	// access
	G   *grid.Grid
	Ord int

	// scratchpad
	rhs []*field.Spectral
}

// NewStepper allocates the stepper and its rhs scratch, one per evolved field
func NewStepper(g *grid.Grid, dec *grid.Decomp, ord, nflds int) (o *Stepper) {
	o = new(Stepper)
	o.G = g
	o.Ord = ord
	o.rhs = make([]*field.Spectral, nflds)
	for m := 0; m < nflds; m++ {
		o.rhs[m] = field.NewSpectral(dec)
	}
	return
}

// Step advances the fields of sv by dt. The live fields are snapshotted
// first; every substep rebuilds them from the snapshot and the rhs of the
// previous substep values.
func (o *Stepper) Step(sv Solver, dt float64) {
	flds := sv.Fields()
	snps := sv.Snaps()
	for m := range flds {
		flds[m].CopyInto(snps[m])
	}
	for sub := o.Ord; sub >= 1; sub-- {
		sv.RHS(o.rhs)
		c := complex(dt/float64(sub), 0)
		for m := range flds {
			f, s, r := flds[m], snps[m], o.rhs[m]
			for ci := 0; ci < f.Dec.Ni(); ci++ {
				for j := 0; j < f.Dec.N; j++ {
					if o.G.InBand(o.G.Ka2[ci][j]) {
						f.C[ci][j] = s.C[ci][j] + c*r.C[ci][j]
					} else {
						f.C[ci][j] = 0
					}
				}
			}
		}
	}
}
