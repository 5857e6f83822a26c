// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for runs
type Data struct {
	Desc    string `json:"desc"`    // description of run
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/ghost
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	ListRun bool   `json:"listrun"` // list run settings at startup
}

// GridData holds the discretization of the periodic square domain
type GridData struct {
	N int `json:"n"` // number of grid points along each axis
}

// TimeData holds time integration control
type TimeData struct {
	Dt    float64 `json:"dt"`    // time step size
	Step  int     `json:"step"`  // total number of steps
	Tstep int     `json:"tstep"` // steps between field outputs; 0 disables
	Sstep int     `json:"sstep"` // steps between spectrum outputs; 0 disables
	Cstep int     `json:"cstep"` // steps between balance outputs; 0 disables
	Ord   int     `json:"ord"`   // order of the Runge-Kutta scheme
	Bench bool    `json:"bench"` // benchmark mode: skip outputs and time the loop
}

// SolverData holds the equation set selection and its coefficients
type SolverData struct {
	Variant string  `json:"variant"` // equation set: hd, mhd, mhdb or hmhd
	Nu      float64 `json:"nu"`      // kinematic viscosity
	Mu      float64 `json:"mu"`      // magnetic diffusivity
	B0      float64 `json:"b0"`      // mhdb: uniform field along the first axis
	Ep      float64 `json:"ep"`      // hmhd: Hall length
}

// ForcingData holds the external stirring setup
type ForcingData struct {
	F0     float64 `json:"f0"`     // mechanical forcing amplitude; 0 disables
	M0     float64 `json:"m0"`     // magnetic forcing amplitude; 0 disables
	Kdn    float64 `json:"kdn"`    // lower bound of the forcing band (|k|)
	Kup    float64 `json:"kup"`    // upper bound of the forcing band (|k|)
	Seed   int     `json:"seed"`   // seed for the phase generator
	Rand   int     `json:"rand"`   // 1 redraws phases every correlation time; 0 holds
	Cort   float64 `json:"cort"`   // correlation time of the random phases
	Corr   float64 `json:"corr"`   // correlation between the two forcings; 0..1
	Fshape string  `json:"fshape"` // amplitude profile over |k| (functions database)
	Mshape string  `json:"mshape"` // amplitude profile of the magnetic forcing
}

// StartData selects fresh start or restart
type StartData struct {
	Stat int    `json:"stat"` // 0 starts fresh; else restart from this output index
	Idir string `json:"idir"` // directory with restart files; DirOut when empty
}

// RunData holds the parallel execution setup
type RunData struct {
	Nproc    int `json:"nproc"`    // in-process ranks when MPI is off
	Nthreads int `json:"nthreads"` // worker goroutines per rank
}

// IniData holds the initial condition of one evolved field
type IniData struct {
	Field string  `json:"field"` // evolved field name: ps, az, vz or bz
	Type  string  `json:"type"`  // zero, mode or band
	A0    float64 `json:"a0"`    // amplitude
	Kx    int     `json:"kx"`    // mode: wavenumber along the first axis
	Ky    int     `json:"ky"`    // mode: wavenumber along the second axis
	Kdn   float64 `json:"kdn"`   // band: lower bound of |k|
	Kup   float64 `json:"kup"`   // band: upper bound of |k|
	Shape string  `json:"shape"` // band: amplitude profile (functions database)
	Seed  int     `json:"seed"`  // band: seed for the random phases
}

// Simulation holds all run data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // global data
	Grid      GridData    `json:"grid"`      // discretization
	Time      TimeData    `json:"time"`      // time integration control
	Solver    SolverData  `json:"solver"`    // equation set and coefficients
	Forcing   ForcingData `json:"forcing"`   // external stirring
	Start     StartData   `json:"start"`     // fresh start or restart
	Run       RunData     `json:"run"`       // parallel execution
	Inic      []*IniData  `json:"inic"`      // initial conditions, one entry per field
	Functions FuncsData   `json:"functions"` // amplitude profile functions

	// derived
	GoroutineId int    // id of goroutine to avoid race problems
	DirOut      string // directory to save results
	Key         string // simulation key; e.g. myrun01.sim => myrun01 or myrun01-alias
	EncType     string // encoder type
	Ftime       int    // steps the forcing phases are held: floor(cort/dt)
}

// ReadSim reads a .sim JSON file, sets defaults, validates and derives the
// remaining quantities. Failures here are fatal.
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool, goroutineId int) *Simulation {

	// new sim
	var o Simulation
	o.GoroutineId = goroutineId

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Time.SetDefault()
	o.Solver.SetDefault()
	o.Run.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	fn := filepath.Base(simfilepath)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/ghost/" + fnkey
	}
	o.DirOut = os.ExpandEnv(o.DirOut)

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results; never when restarting
	if erasePrev && o.Start.Stat == 0 {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// validate and derive
	o.PostProcess()
	return &o
}

// SetDefault sets default values
func (o *TimeData) SetDefault() {
	o.Ord = 2
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Variant = "hd"
}

// SetDefault sets default values
func (o *RunData) SetDefault() {
	o.Nproc = 1
	o.Nthreads = 1
}

// PostProcess validates the just read json file and computes derived control
// quantities
func (o *Simulation) PostProcess() {
	if o.Grid.N < 4 || o.Grid.N%2 != 0 {
		chk.Panic("grid.n must be even and at least 4. n=%d is invalid", o.Grid.N)
	}
	if o.Time.Dt <= 0 {
		chk.Panic("time.dt must be positive. dt=%g is invalid", o.Time.Dt)
	}
	if o.Time.Step < 0 {
		chk.Panic("time.step cannot be negative. step=%d is invalid", o.Time.Step)
	}
	if o.Time.Ord < 1 || o.Time.Ord > 4 {
		chk.Panic("time.ord must be in [1,4]. ord=%d is invalid", o.Time.Ord)
	}
	if o.Time.Tstep < 0 || o.Time.Sstep < 0 || o.Time.Cstep < 0 {
		chk.Panic("output cadences cannot be negative")
	}
	if o.Forcing.Rand != 0 && o.Forcing.Rand != 1 {
		chk.Panic("forcing.rand must be 0 or 1. rand=%d is invalid", o.Forcing.Rand)
	}
	if o.Forcing.Corr < 0 || o.Forcing.Corr > 1 {
		chk.Panic("forcing.corr must be in [0,1]. corr=%g is invalid", o.Forcing.Corr)
	}
	if o.Forcing.Kup < o.Forcing.Kdn {
		chk.Panic("forcing band is empty: kdn=%g kup=%g", o.Forcing.Kdn, o.Forcing.Kup)
	}
	if o.Start.Stat < 0 {
		chk.Panic("start.stat cannot be negative. stat=%d is invalid", o.Start.Stat)
	}
	if o.Run.Nproc < 1 {
		chk.Panic("run.nproc must be positive. nproc=%d is invalid", o.Run.Nproc)
	}
	if o.Run.Nthreads < 1 {
		chk.Panic("run.nthreads must be positive. nthreads=%d is invalid", o.Run.Nthreads)
	}
	for _, ini := range o.Inic {
		switch ini.Type {
		case "zero", "mode", "band":
		default:
			chk.Panic("initial condition type %q is invalid", ini.Type)
		}
	}
	o.Ftime = int(o.Forcing.Cort / o.Time.Dt)
}

// Ini returns the initial condition of a field; nil means start from zero
func (o *Simulation) Ini(fieldname string) *IniData {
	for _, ini := range o.Inic {
		if ini.Field == fieldname {
			return ini
		}
	}
	return nil
}

// GetInfo returns formatted information about this run
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}
