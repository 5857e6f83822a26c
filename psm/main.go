// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package psm implements the pseudo-spectral method solver
package psm

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/AlexJamesWright/GHOST/comm"
	"github.com/AlexJamesWright/GHOST/fftp"
	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/inp"
	"github.com/AlexJamesWright/GHOST/out"
)

// Main holds all data of one rank of a run
type Main struct {

	// essential
	Sim *inp.Simulation // simulation data
	Grp comm.Group      // the ranks of this run
	Dec *grid.Decomp    // slab decomposition of this rank
	G   *grid.Grid      // wavenumber tables
	Pl  *fftp.Plan      // transform plan
	Frc *Forcing        // external stirring
	Sv  Solver          // equation set
	St  *Stepper        // time stepper
	W   *out.Writer     // cadenced outputs

	// control
	ShowMsg bool // show messages on rank 0

	// loop state
	s0    int // first iteration of the loop
	obin  int // next field output index
	ospec int // next spectrum output index
	timet int // field output countup
	timec int // balance output countup
	times int // spectrum output countup
}

// NewMain builds one rank of a run from already read input data. All ranks
// of grp must call NewMain collectively. When random forcing is on, the
// generator must have been seeded with rnd.Init once before the ranks
// started. Failures here are fatal.
func NewMain(sim *inp.Simulation, grp comm.Group, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)
	o.Sim = sim
	o.Grp = grp
	o.ShowMsg = verbose && grp.Rank() == 0

	// grid and transforms
	o.Dec = grid.NewDecomp(sim.Grid.N, grp.Size(), grp.Rank())
	o.G = grid.New(o.Dec)
	o.Pl = fftp.NewPlan(o.G, o.Dec, grp, sim.Run.Nthreads)

	// external stirring
	var fsh, msh fun.TimeSpace
	var err error
	if sim.Forcing.F0 != 0 && sim.Forcing.Fshape != "" {
		fsh, err = sim.Functions.Get(sim.Forcing.Fshape)
		if err != nil {
			chk.Panic("cannot get mechanical stirring shape:\n%v", err)
		}
	}
	if sim.Forcing.M0 != 0 && sim.Forcing.Mshape != "" {
		msh, err = sim.Functions.Get(sim.Forcing.Mshape)
		if err != nil {
			chk.Panic("cannot get magnetic stirring shape:\n%v", err)
		}
	}
	o.Frc = NewForcing(sim, o.G, o.Dec, grp, fsh, msh)

	// allocate solver
	if alloc, ok := allocators[sim.Solver.Variant]; ok {
		o.Sv = alloc(sim, o.G, o.Dec, o.Pl, o.Frc)
	} else {
		chk.Panic("cannot find equation set named %q", sim.Solver.Variant)
	}
	o.St = NewStepper(o.G, o.Dec, sim.Time.Ord, len(o.Sv.Names()))

	// outputs
	specs := o.Sv.BalanceSpecs()
	balNames := make([]string, len(specs))
	for i, sp := range specs {
		balNames[i] = sp.Name
	}
	resume := sim.Start.Stat > 0
	o.W, err = out.NewWriter(sim, o.G, o.Dec, grp, o.Pl, balNames, resume)
	if err != nil {
		chk.Panic("cannot allocate writer:\n%v", err)
	}

	// initial state
	if resume {
		o.restart()
	} else {
		err = SetInitial(o.Sv, sim, o.G, o.Dec)
		if err != nil {
			chk.Panic("cannot build initial conditions:\n%v", err)
		}
		o.s0 = 1
		o.timet = sim.Time.Tstep
		o.timec = sim.Time.Cstep
		o.times = sim.Time.Sstep
	}

	// message
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> %s run at n=%d on %d ranks\n", sim.Solver.Variant, sim.Grid.N, grp.Size())
	}
	return
}

// restart loads the checkpoint selected by start.stat and rebuilds the loop
// state so the continued run reproduces the output timeline of an
// uninterrupted one
func (o *Main) restart() {
	sim := o.Sim
	if sim.Time.Tstep < 1 {
		chk.Panic("restart needs time.tstep > 0 to locate the output index")
	}
	dir := sim.Start.Idir
	if dir == "" {
		dir = sim.DirOut
	}
	sum, err := out.ReadSum(dir, sim.Key)
	if err != nil {
		chk.Panic("cannot read summary for restart:\n%v", err)
	}
	if sum.N != sim.Grid.N {
		chk.Panic("restart grid mismatch: checkpoints have n=%d, input has n=%d", sum.N, sim.Grid.N)
	}
	if sum.Nproc != o.Grp.Size() {
		chk.Panic("restart needs the decomposition that wrote the checkpoints: nproc=%d, running on %d", sum.Nproc, o.Grp.Size())
	}
	if sim.Start.Stat >= sum.Obin {
		chk.Panic("output index %d is not available; last one is %d", sim.Start.Stat, sum.Obin-1)
	}
	err = o.W.ReadFields(o.Sv.Names(), o.Sv.Fields(), sim.Start.Stat, dir)
	if err != nil {
		chk.Panic("cannot read restart fields:\n%v", err)
	}
	rt := sim.Start.Stat * sim.Time.Tstep
	o.Frc.FastForward(rt)
	o.s0 = rt + 1
	o.obin = sim.Start.Stat + 1
	if sim.Time.Sstep > 0 {
		o.ospec = rt/sim.Time.Sstep + 1
	}
	o.timet = resumeCount(rt, sim.Time.Tstep)
	o.timec = resumeCount(rt, sim.Time.Cstep)
	o.times = resumeCount(rt, sim.Time.Sstep)
}

// resumeCount rebuilds an output countup as it was when an uninterrupted run
// entered iteration rt+1
func resumeCount(rt, cadence int) int {
	if cadence < 1 {
		return 0
	}
	if rt%cadence == 0 {
		return 0
	}
	return (rt-1)%cadence + 1
}

// Run integrates the equations over the configured number of steps, writing
// the cadenced outputs along the way
func (o *Main) Run() (err error) {

	// benchmark mode: no outputs, time the loop
	if o.Sim.Time.Bench {
		o.bench()
		return
	}

	// message
	cputime := time.Now()
	if o.ShowMsg {
		io.Pf("> Running time loop\n")
	}

	// time loop
	dat := &o.Sim.Time
	for s := o.s0; s <= dat.Step; s++ {

		// cadenced outputs of the state after s-1 steps
		tnow := float64(s-1) * dat.Dt
		if dat.Tstep > 0 && o.timet == dat.Tstep {
			o.timet = 0
			err = o.W.WriteFields(o.Sv.Names(), o.Sv.Fields(), o.obin, s-1, o.ospec)
			if err != nil {
				return
			}
			o.obin++
		}
		if dat.Cstep > 0 && o.timec == dat.Cstep {
			o.timec = 0
			err = o.W.Balance(tnow, o.Sv.BalanceSpecs(), o.Sv.Fields())
			if err != nil {
				return
			}
		}
		if dat.Sstep > 0 && o.times == dat.Sstep {
			o.times = 0
			err = o.W.Spectrum(o.Sv.SpectrumSpecs(), o.Sv.Fields(), o.ospec)
			if err != nil {
				return
			}
			o.ospec++
		}

		// stirring phases and Runge-Kutta step
		o.Frc.Step()
		o.St.Step(o.Sv, dat.Dt)
		o.timet++
		o.timec++
		o.times++
	}

	// message
	if o.ShowMsg {
		io.PfGreen("> Success\n")
		io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
	}
	return
}

// bench runs the time loop without any output and reports the step rate
func (o *Main) bench() {
	o.Grp.Barrier()
	start := time.Now()
	nsteps := 0
	for s := o.s0; s <= o.Sim.Time.Step; s++ {
		o.Frc.Step()
		o.St.Step(o.Sv, o.Sim.Time.Dt)
		nsteps++
	}
	o.Grp.Barrier()
	elapsed := time.Now().Sub(start)
	if o.Grp.Rank() == 0 {
		rate := float64(nsteps) / elapsed.Seconds()
		io.Pf("> Benchmark: %d steps on %d ranks in %v (%.2f steps/s)\n", nsteps, o.Grp.Size(), elapsed, rate)
	}
}

// Close releases the output files of this rank
func (o *Main) Close() {
	if o.W != nil {
		o.W.Close()
	}
}
