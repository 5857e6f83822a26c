// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"

	"github.com/AlexJamesWright/GHOST/comm"
	"github.com/AlexJamesWright/GHOST/inp"
	"github.com/AlexJamesWright/GHOST/psm"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	doprof := io.ArgToInt(3, 0)

	// message
	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGHOST -- Go Spectral Solver for 2D Turbulent Flows\n")
		io.Pf("Copyright 2017 The GHOST Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// distributed run: one process per rank under MPI
	if mpi.IsOn() && mpi.Size() > 1 {

		// only the root erases previous results, before the group starts
		if mpi.Rank() != 0 {
			erasePrev = false
		}
		sim := inp.ReadSim(fnamepath, "", erasePrev, true, 0)
		rnd.Init(sim.Forcing.Seed)
		grp := comm.NewMpiGroup()
		grp.Barrier()
		m := psm.NewMain(sim, grp, verbose)
		defer m.Close()
		err := m.Run()
		if err != nil {
			chk.Panic("Run failed:\n%v", err)
		}
		return
	}

	// in-process run: run.nproc goroutine ranks sharing the input
	sim := inp.ReadSim(fnamepath, "", erasePrev, true, 0)
	rnd.Init(sim.Forcing.Seed)
	err := comm.Run(sim.Run.Nproc, func(grp *comm.MemGroup) error {
		m := psm.NewMain(sim, grp, verbose)
		defer m.Close()
		return m.Run()
	})
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
