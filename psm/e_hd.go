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

// HD implements incompressible hydrodynamics on the doubly periodic plane,
// evolving the streamfunction in spectral space:
//
//   dψ    f - {ω,ψ}
//   ── =  ───────── - ν k² ψ        with   ω = ∇²ψ
//   dt        k²
//
// where {a,b} is the Poisson bracket and f the mechanical stirring
type HD struct {
	common
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register equation set
func init() {
	allocators["hd"] = func(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, pl *fftp.Plan, frc *Forcing) Solver {
		var o HD
		o.init(sim, g, dec, pl, frc, []string{"ps"}, 2)
		return &o
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Variant returns the keyword of this equation set
func (o *HD) Variant() string { return "hd" }

// RHS computes the right-hand side of the streamfunction equation
func (o *HD) RHS(rhs []*field.Spectral) {
	ps := o.flds[0]
	wz, bw := o.aux[0], o.aux[1]
	o.pl.Laplak(ps, wz)
	o.br.Compute(wz, ps, bw)
	r := rhs[0]
	for ci := 0; ci < o.dec.Ni(); ci++ {
		for j := 0; j < o.dec.N; j++ {
			k2 := o.g.Ka2[ci][j]
			if k2 < o.g.Tiny {
				r.C[ci][j] = 0
				continue
			}
			v := -bw.C[ci][j]
			if o.frc.Fk != nil {
				v += o.frc.Fk.C[ci][j]
			}
			r.C[ci][j] = v/complex(k2, 0) - complex(o.nu*k2, 0)*ps.C[ci][j]
		}
	}
}

// BalanceSpecs returns the kinetic energy and enstrophy series
func (o *HD) BalanceSpecs() []out.BalanceSpec {
	return []out.BalanceSpec{{"en", 0, 1}, {"ens", 0, 2}}
}

// SpectrumSpecs returns the kinetic energy shell spectrum
func (o *HD) SpectrumSpecs() []out.SpectrumSpec {
	return []out.SpectrumSpec{{"kspec", 0, 1}}
}
