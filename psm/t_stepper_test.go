// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/AlexJamesWright/GHOST/ana"
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/out"
)

// decaySolver is a linear equation set with rhs = -λ·u, used to probe the
// stepper recursion in isolation
type decaySolver struct {
	lam  float64
	flds []*field.Spectral
	snps []*field.Spectral
}

func newDecaySolver(dec *grid.Decomp, lam float64) (o *decaySolver) {
	o = new(decaySolver)
	o.lam = lam
	o.flds = []*field.Spectral{field.NewSpectral(dec)}
	o.snps = []*field.Spectral{field.NewSpectral(dec)}
	return
}

func (o *decaySolver) Variant() string                   { return "decay" }
func (o *decaySolver) Names() []string                   { return []string{"u"} }
func (o *decaySolver) Fields() []*field.Spectral         { return o.flds }
func (o *decaySolver) Snaps() []*field.Spectral          { return o.snps }
func (o *decaySolver) BalanceSpecs() []out.BalanceSpec   { return nil }
func (o *decaySolver) SpectrumSpecs() []out.SpectrumSpec { return nil }

func (o *decaySolver) RHS(rhs []*field.Spectral) {
	f, r := o.flds[0], rhs[0]
	for ci := 0; ci < f.Dec.Ni(); ci++ {
		for j := 0; j < f.Dec.N; j++ {
			r.C[ci][j] = complex(-o.lam, 0) * f.C[ci][j]
		}
	}
}

func Test_step01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step01. band filter of the stepper")

	dec := grid.NewDecomp(16, 1, 0)
	g := grid.New(dec)
	sv := newDecaySolver(dec, 0)
	f := sv.flds[0]
	f.SetMode(1, 2, complex(0.5, -0.25)) // resolved
	f.SetMode(5, 2, complex(1, 1))       // beyond the dealiasing cut
	f.SetMode(0, 0, complex(3, 0))       // mean

	st := NewStepper(g, dec, 2, 1)
	st.Step(sv, 0.01)

	v, _ := f.Mode(1, 2)
	if v != complex(0.5, -0.25) {
		tst.Errorf("resolved mode must survive a null rhs: %v", v)
		return
	}
	v, _ = f.Mode(5, 2)
	if v != 0 {
		tst.Errorf("mode beyond the cut must be zeroed: %v", v)
		return
	}
	v, _ = f.Mode(0, 0)
	if v != 0 {
		tst.Errorf("mean must be zeroed: %v", v)
		return
	}
}

func Test_step02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step02. decay factors of the recursion")

	dec := grid.NewDecomp(16, 1, 0)
	g := grid.New(dec)
	lam, dt := 0.7, 0.05

	modes := [][2]int{{1, 2}, {0, 3}, {3, 1}}
	vals := []complex128{complex(0.5, -0.25), complex(0, 1), complex(-2, 0.75)}

	for ord := 1; ord <= 4; ord++ {
		sv := newDecaySolver(dec, lam)
		f := sv.flds[0]
		for i, m := range modes {
			f.SetMode(m[0], m[1], vals[i])
		}

		st := NewStepper(g, dec, ord, 1)
		st.Step(sv, dt)

		fac := ana.RKDecay(lam, dt, ord)
		for i, m := range modes {
			v, _ := f.Mode(m[0], m[1])
			want := vals[i] * complex(fac, 0)
			if cmplx.Abs(v-want) > 1e-13 {
				tst.Errorf("ord=%d: mode (%d,%d) decayed wrongly: %v vs %v", ord, m[0], m[1], v, want)
				return
			}
		}
	}
}

func Test_step03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step03. repeated steps compound the factor")

	dec := grid.NewDecomp(16, 1, 0)
	g := grid.New(dec)
	lam, dt, nsteps := 1.3, 0.02, 7

	sv := newDecaySolver(dec, lam)
	f := sv.flds[0]
	f.SetMode(2, -3, complex(1.5, 0.5))

	st := NewStepper(g, dec, 3, 1)
	for i := 0; i < nsteps; i++ {
		st.Step(sv, dt)
	}

	fac := ana.RKDecayN(lam, dt, 3, nsteps)
	v, _ := f.Mode(2, -3)
	want := complex(1.5, 0.5) * complex(fac, 0)
	if cmplx.Abs(v-want) > 1e-13 {
		tst.Errorf("compounded decay is wrong: %v vs %v", v, want)
		return
	}
}
