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

// Solver implements the spectral right-hand side of one equation set
type Solver interface {
	Variant() string                   // keyword of the equation set
	Names() []string                   // evolved field names, checkpoint order
	Fields() []*field.Spectral         // live evolved fields
	Snaps() []*field.Spectral          // snapshot storage used by the stepper
	RHS(rhs []*field.Spectral)         // rhs of every evolved field from the live values
	BalanceSpecs() []out.BalanceSpec   // quadratic series of the balance file
	SpectrumSpecs() []out.SpectrumSpec // shell spectra written at the spectrum cadence
}

// Allocator defines a function to allocate solvers
type Allocator func(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, pl *fftp.Plan, frc *Forcing) Solver

// allocators holds all available equation sets
var allocators = make(map[string]Allocator)

// common holds the data and scratch shared by all equation sets
type common struct {

	// access
	sim *inp.Simulation
	g   *grid.Grid
	dec *grid.Decomp
	pl  *fftp.Plan
	frc *Forcing

	// evolved fields
	names []string
	flds  []*field.Spectral
	snps  []*field.Spectral

	// scratchpad
	br  *Bracket
	aux []*field.Spectral

	// coefficients
	nu float64
	mu float64
}

// init allocates the evolved fields and the rhs building scratch
func (o *common) init(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, pl *fftp.Plan, frc *Forcing, names []string, naux int) {
	o.sim = sim
	o.g = g
	o.dec = dec
	o.pl = pl
	o.frc = frc
	o.names = names
	o.flds = make([]*field.Spectral, len(names))
	o.snps = make([]*field.Spectral, len(names))
	for m := range names {
		o.flds[m] = field.NewSpectral(dec)
		o.snps[m] = field.NewSpectral(dec)
	}
	o.br = NewBracket(pl)
	o.aux = make([]*field.Spectral, naux)
	for m := 0; m < naux; m++ {
		o.aux[m] = field.NewSpectral(dec)
	}
	o.nu = sim.Solver.Nu
	o.mu = sim.Solver.Mu
}

func (o *common) Names() []string           { return o.names }
func (o *common) Fields() []*field.Spectral { return o.flds }
func (o *common) Snaps() []*field.Spectral  { return o.snps }
