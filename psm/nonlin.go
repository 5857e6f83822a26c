// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"github.com/AlexJamesWright/GHOST/fftp"
	"github.com/AlexJamesWright/GHOST/field"
)

// Bracket evaluates the Poisson bracket of two spectral fields in physical
// space:
//
//              ∂a ∂b   ∂a ∂b
//   {a,b}  =   ── ── - ── ──
//              ∂x ∂y   ∂y ∂x
//
// Each evaluation costs four inverse transforms and one forward transform.
type Bracket struct {

	// access
	Pl *fftp.Plan

	// scratchpad
	d  *field.Spectral // spectral derivative
	r1 *field.Physical // ∂a/∂x
	r2 *field.Physical // ∂b/∂y
	r3 *field.Physical // ∂a/∂y
	r4 *field.Physical // ∂b/∂x
	rp *field.Physical // pointwise product
}

// NewBracket allocates the scratchpad of one bracket evaluator
func NewBracket(pl *fftp.Plan) (o *Bracket) {
	o = new(Bracket)
	o.Pl = pl
	o.d = field.NewSpectral(pl.Dec)
	o.r1 = field.NewPhysical(pl.Dec)
	o.r2 = field.NewPhysical(pl.Dec)
	o.r3 = field.NewPhysical(pl.Dec)
	o.r4 = field.NewPhysical(pl.Dec)
	o.rp = field.NewPhysical(pl.Dec)
	return
}

// Compute evaluates res = transform of {a,b} from the working coefficients
// of a and b. The physical product carries a 1/n⁴ factor to return the
// result at the working scale. res must not alias a or b.
func (o *Bracket) Compute(a, b, res *field.Spectral) {
	o.Pl.Derivk(a, 0, o.d)
	o.Pl.Inverse(o.d, o.r1)
	o.Pl.Derivk(b, 1, o.d)
	o.Pl.Inverse(o.d, o.r2)
	o.Pl.Derivk(a, 1, o.d)
	o.Pl.Inverse(o.d, o.r3)
	o.Pl.Derivk(b, 0, o.d)
	o.Pl.Inverse(o.d, o.r4)
	n := o.Pl.Dec.N
	tmp := 1.0 / (float64(n) * float64(n) * float64(n) * float64(n))
	field.ForRows(o.Pl.Dec.Nj(), o.Pl.Nw, func(lo, hi int) {
		for rj := lo; rj < hi; rj++ {
			for i := 0; i < n; i++ {
				o.rp.R[rj][i] = (o.r1.R[rj][i]*o.r2.R[rj][i] - o.r3.R[rj][i]*o.r4.R[rj][i]) * tmp
			}
		}
	})
	o.Pl.Forward(o.rp, res)
}
