// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"github.com/AlexJamesWright/GHOST/fftp"
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/inp"
	"github.com/AlexJamesWright/GHOST/out"
)

// MHDB implements incompressible magnetohydrodynamics threaded by a uniform
// magnetic field b0 along the first axis. On top of the mhd right-hand
// sides, the uniform field couples the two equations linearly:
//
//   dψ            da
//   ── += -i b0 kx a        ── += -i b0 kx ψ
//   dt            dt
//
// sustaining Alfvén waves of frequency b0·kx
type MHDB struct {
	common
	b0 float64
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register equation set
func init() {
	allocators["mhdb"] = func(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, pl *fftp.Plan, frc *Forcing) Solver {
		var o MHDB
		o.init(sim, g, dec, pl, frc, []string{"ps", "az"}, 4)
		o.b0 = sim.Solver.B0
		return &o
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Variant returns the keyword of this equation set
func (o *MHDB) Variant() string { return "mhdb" }

// RHS computes the right-hand sides with the uniform field coupling
func (o *MHDB) RHS(rhs []*field.Spectral) {
	ps, az := o.flds[0], o.flds[1]
	lap, b1, b2, b3 := o.aux[0], o.aux[1], o.aux[2], o.aux[3]
	o.pl.Laplak(ps, lap)
	o.br.Compute(lap, ps, b1) // {ω,ψ}
	o.pl.Laplak(az, lap)
	o.br.Compute(az, lap, b2) // {a,∇²a}
	o.br.Compute(az, ps, b3)  // {a,ψ}
	rp, ra := rhs[0], rhs[1]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		gi := o.dec.Ista + ci
		kx := o.g.Ka[gi]
		alf := complex(0, -o.b0*kx)
		for j := 0; j < o.dec.N; j++ {
			k2 := o.g.Ka2[ci][j]
			if k2 < o.g.Tiny {
				rp.C[ci][j] = 0
				ra.C[ci][j] = 0
				continue
			}
			v := -b1.C[ci][j] - b2.C[ci][j]
			if o.frc.Fk != nil {
				v += o.frc.Fk.C[ci][j]
			}
			rp.C[ci][j] = v/complex(k2, 0) - complex(o.nu*k2, 0)*ps.C[ci][j] + alf*az.C[ci][j]
			w := b3.C[ci][j]
			if o.frc.Mk != nil {
				w += o.frc.Mk.C[ci][j]
			}
			ra.C[ci][j] = w - complex(o.mu*k2, 0)*az.C[ci][j] + alf*ps.C[ci][j]
		}
	}
}

// BalanceSpecs returns the kinetic and magnetic energy, enstrophy and
// squared current series
func (o *MHDB) BalanceSpecs() []out.BalanceSpec {
	return []out.BalanceSpec{{"ke", 0, 1}, {"me", 1, 1}, {"ens", 0, 2}, {"sqj", 1, 2}}
}

// SpectrumSpecs returns the kinetic and magnetic energy shell spectra
func (o *MHDB) SpectrumSpecs() []out.SpectrumSpec {
	return []out.SpectrumSpec{{"kspec", 0, 1}, {"mspec", 1, 1}}
}
