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

// HMHD implements Hall magnetohydrodynamics with the out-of-plane velocity u
// and magnetic field b retained, evolving four scalar fields:
//
//   dω/dt = {ω,ψ} + {a,∇²a} + ν ∇²ω + f                ω  = ∇²ψ
//   da/dt = {a,ψe} + m + μ ∇²a                         ψe = ψ + ε b
//   du/dt = {u,ψ} + {b,a} + ν ∇²u
//   db/dt = {b,ψe} + {ue,a} + μ ∇²b                    ue = u + ε ∇²a
//
// ε is the Hall length; ε = 0 recovers two-and-a-half dimensional
// magnetohydrodynamics
type HMHD struct {
	common
	ep float64
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register equation set
func init() {
	allocators["hmhd"] = func(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, pl *fftp.Plan, frc *Forcing) Solver {
		var o HMHD
		o.init(sim, g, dec, pl, frc, []string{"ps", "az", "vz", "bz"}, 6)
		o.ep = sim.Solver.Ep
		return &o
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Variant returns the keyword of this equation set
func (o *HMHD) Variant() string { return "hmhd" }

// RHS computes the right-hand sides of the four evolved fields
func (o *HMHD) RHS(rhs []*field.Spectral) {
	ps, az, vz, bz := o.flds[0], o.flds[1], o.flds[2], o.flds[3]
	ep := complex(o.ep, 0)

	// streamfunction: dω/dt = {ω,ψ} + {a,∇²a} + ν∇²ω + f
	wz, b1, jz, b2 := o.aux[0], o.aux[1], o.aux[2], o.aux[3]
	o.pl.Laplak(ps, wz)
	o.br.Compute(wz, ps, b1) // {ω,ψ}
	o.pl.Laplak(az, jz)
	o.br.Compute(az, jz, b2) // {a,∇²a}
	r := rhs[0]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			k2 := o.g.Ka2[ci][j]
			if k2 < o.g.Tiny {
				r.C[ci][j] = 0
				continue
			}
			v := -b1.C[ci][j] - b2.C[ci][j]
			if o.frc.Fk != nil {
				v += o.frc.Fk.C[ci][j]
			}
			r.C[ci][j] = v/complex(k2, 0) - complex(o.nu*k2, 0)*ps.C[ci][j]
		}
	}

	// flux function: da/dt = {a,ψe} + m + μ∇²a
	pse := o.aux[0] // ω is no longer needed
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			pse.C[ci][j] = ps.C[ci][j] + ep*bz.C[ci][j]
		}
	}
	o.br.Compute(az, pse, b1) // {a,ψe}
	r = rhs[1]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			k2 := o.g.Ka2[ci][j]
			if k2 < o.g.Tiny {
				r.C[ci][j] = 0
				continue
			}
			w := b1.C[ci][j]
			if o.frc.Mk != nil {
				w += o.frc.Mk.C[ci][j]
			}
			r.C[ci][j] = w - complex(o.mu*k2, 0)*az.C[ci][j]
		}
	}

	// out-of-plane velocity: du/dt = {u,ψ} + {b,a} + ν∇²u
	b3, b4 := o.aux[3], o.aux[4] // {a,∇²a} is no longer needed
	o.br.Compute(vz, ps, b3)     // {u,ψ}
	o.br.Compute(bz, az, b4)     // {b,a}
	r = rhs[2]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			k2 := o.g.Ka2[ci][j]
			if k2 < o.g.Tiny {
				r.C[ci][j] = 0
				continue
			}
			r.C[ci][j] = b3.C[ci][j] + b4.C[ci][j] - complex(o.nu*k2, 0)*vz.C[ci][j]
		}
	}

	// out-of-plane field: db/dt = {b,ψe} + {ue,a} + μ∇²b
	ue := o.aux[5]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			ue.C[ci][j] = vz.C[ci][j] + ep*jz.C[ci][j]
		}
	}
	o.br.Compute(bz, pse, b3) // {b,ψe}
	o.br.Compute(ue, az, b4)  // {ue,a}
	r = rhs[3]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			k2 := o.g.Ka2[ci][j]
			if k2 < o.g.Tiny {
				r.C[ci][j] = 0
				continue
			}
			r.C[ci][j] = b3.C[ci][j] + b4.C[ci][j] - complex(o.mu*k2, 0)*bz.C[ci][j]
		}
	}
}

// BalanceSpecs returns the in-plane and out-of-plane kinetic and magnetic
// energy series
func (o *HMHD) BalanceSpecs() []out.BalanceSpec {
	return []out.BalanceSpec{{"ke", 0, 1}, {"me", 1, 1}, {"kez", 2, 0}, {"mez", 3, 0}}
}

// SpectrumSpecs returns the shell spectra of the four energies
func (o *HMHD) SpectrumSpecs() []out.SpectrumSpec {
	return []out.SpectrumSpec{{"kspec", 0, 1}, {"mspec", 1, 1}, {"kzspec", 2, 0}, {"mzspec", 3, 0}}
}
