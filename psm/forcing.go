// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/rnd"

	"github.com/AlexJamesWright/GHOST/comm"
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/inp"
)

// Forcing holds the external stirring spectra. The base spectra are built
// from the seed with reproducible per-mode phases; when rand=1 the spectra
// are rotated by freshly drawn angles every correlation time. The draws use
// the global generator, which must be seeded with rnd.Init once before the
// ranks start.
type Forcing struct {

	// access
	Sim *inp.Simulation
	G   *grid.Grid
	Dec *grid.Decomp
	Grp comm.Group

	// stirring spectra at the working scale; nil when the amplitude is zero
	Fk *field.Spectral // mechanical stirring, enters the streamfunction equation
	Mk *field.Spectral // magnetic stirring, enters the flux function equation

	// phase update state
	fcount int
	angles []float64
}

// NewForcing builds the stirring spectra over the band kdn ≤ |k| ≤ kup. The
// shape functions modulate the amplitudes over |k|; nil means a flat profile.
func NewForcing(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, grp comm.Group, fsh, msh fun.TimeSpace) (o *Forcing) {
	o = new(Forcing)
	o.Sim = sim
	o.G = g
	o.Dec = dec
	o.Grp = grp
	o.angles = make([]float64, 2)
	dat := &sim.Forcing
	if dat.F0 != 0 {
		o.Fk = field.NewSpectral(dec)
		bandField(g, dec, o.Fk, dat.F0, dat.Kdn, dat.Kup, fsh, dat.Seed)
	}
	if dat.M0 != 0 {
		o.Mk = field.NewSpectral(dec)
		bandField(g, dec, o.Mk, dat.M0, dat.Kdn, dat.Kup, msh, dat.Seed+1)
	}
	return
}

// bandField fills f with amp·shape(|k|)·e^{iθ} on the modes with
// kdn ≤ |k| ≤ kup, at the working scale. Modes on the first column are set
// with ky > 0 only, keeping the stored conjugate pair consistent.
func bandField(g *grid.Grid, dec *grid.Decomp, f *field.Spectral, amp, kdn, kup float64, shape fun.TimeSpace, seed int) {
	n := dec.N
	n2 := float64(n) * float64(n)
	for ci := 0; ci < dec.Ni(); ci++ {
		gi := dec.Ista + ci
		for j := 0; j < n; j++ {
			ky := g.Ka[j]
			if gi == 0 && ky <= 0 {
				continue
			}
			k2 := g.Ka2[ci][j]
			kk := math.Sqrt(k2)
			if kk < kdn || kk > kup {
				continue
			}
			a := amp
			if shape != nil {
				a *= shape.F(kk, nil)
			}
			th := modeAngle(seed, gi, j)
			v := complex(n2*a*math.Cos(th), n2*a*math.Sin(th))
			if gi == 0 {
				f.SetMode(0, int(ky), v)
			} else {
				f.C[ci][j] = v
			}
		}
	}
}

// Step counts one time step and, at the correlation cadence, rotates the
// random phases. All ranks must call Step at every step: the angles are
// drawn on rank 0 and broadcast.
func (o *Forcing) Step() {
	if o.Sim.Forcing.Rand != 1 || (o.Fk == nil && o.Mk == nil) {
		return
	}
	ftime := o.Sim.Ftime
	if ftime < 1 {
		ftime = 1
	}
	o.fcount++
	if o.fcount < ftime {
		return
	}
	o.fcount = 0
	if o.Grp.Rank() == 0 {
		o.angles[0] = rnd.Float64(0, 2.0*math.Pi)
		o.angles[1] = rnd.Float64(0, 2.0*math.Pi)
	}
	o.Grp.BcastFloats(o.angles, 0)
	p1 := cmplx.Rect(1, o.angles[0])
	corr := o.Sim.Forcing.Corr
	p2 := complex(corr, 0)*p1 + complex(1-corr, 0)*cmplx.Rect(1, o.angles[1])
	if o.Fk != nil {
		o.rotate(o.Fk, p1)
	}
	if o.Mk != nil {
		o.rotate(o.Mk, p2)
	}
}

// rotate multiplies the stored modes by the phasor p. On the first column
// the ky < 0 half takes the conjugate phasor, so the spectrum stays the
// transform of a real field.
func (o *Forcing) rotate(f *field.Spectral, p complex128) {
	pc := cmplx.Conj(p)
	for ci := 0; ci < o.Dec.Ni(); ci++ {
		gi := o.Dec.Ista + ci
		for j := 0; j < o.Dec.N; j++ {
			if gi == 0 {
				switch {
				case o.G.Ka[j] > 0:
					f.C[ci][j] *= p
				case o.G.Ka[j] < 0:
					f.C[ci][j] *= pc
				}
				continue
			}
			f.C[ci][j] *= p
		}
	}
}

// FastForward replays the phase updates of the first steps steps of a
// previous run, restoring the forcing state on restart
func (o *Forcing) FastForward(steps int) {
	for s := 1; s <= steps; s++ {
		o.Step()
	}
}
