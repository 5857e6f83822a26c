// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/AlexJamesWright/GHOST/comm"
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/inp"
)

// frcRig builds a serial environment from the data/frc16.sim file
func frcRig() (sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, grp comm.Group) {
	sim = inp.ReadSim("data/frc16.sim", "", true, true, 0)
	dec = grid.NewDecomp(sim.Grid.N, 1, 0)
	g = grid.New(dec)
	grp = comm.NewMemGroups(1)[0]
	return
}

// checkPairs verifies that the first column stores the transform of a real
// field: every ky has the conjugate of -ky
func checkPairs(tst *testing.T, label string, f *field.Spectral) {
	n := f.Dec.N
	for j := 1; j < n; j++ {
		a, b := f.C[0][j], f.C[0][n-j]
		if a != cmplx.Conj(b) {
			tst.Errorf("%s: first column is not conjugate-paired at j=%d: %v vs %v", label, j, a, b)
			return
		}
	}
}

func Test_rng01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rng01. reproducible per-mode angles")

	a := modeAngle(77, 3, 5)
	b := modeAngle(77, 3, 5)
	if a != b {
		tst.Errorf("angles must be reproducible: %g != %g", a, b)
		return
	}
	if modeAngle(77, 3, 6) == a || modeAngle(78, 3, 5) == a {
		tst.Errorf("angles must depend on the indices and the seed")
		return
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			th := modeAngle(1000, i, j)
			if th < 0 || th >= 2.0*math.Pi {
				tst.Errorf("angle out of range: %g", th)
				return
			}
		}
	}
}

func Test_frc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frc01. stirring spectra held fixed")

	sim, g, dec, grp := frcRig()
	sim.Forcing.Rand = 0
	frc := NewForcing(sim, g, dec, grp, nil, nil)

	// band structure and flat amplitudes
	n2 := float64(dec.N) * float64(dec.N)
	nnz := 0
	for ci := 0; ci < dec.Ni(); ci++ {
		gi := dec.Ista + ci
		for j := 0; j < dec.N; j++ {
			v := frc.Fk.C[ci][j]
			if v == 0 {
				continue
			}
			nnz++
			kk := math.Sqrt(g.Ka2[ci][j])
			if kk < sim.Forcing.Kdn-1e-14 || kk > sim.Forcing.Kup+1e-14 {
				tst.Errorf("mode (%d,%d) with |k|=%g is outside the band", gi, j, kk)
				return
			}
			chk.Float64(tst, "amplitude", 1e-10, cmplx.Abs(v), n2*sim.Forcing.F0)
		}
	}
	if nnz == 0 {
		tst.Errorf("the band cannot be empty")
		return
	}
	checkPairs(tst, "fk", frc.Fk)
	checkPairs(tst, "mk", frc.Mk)

	// without phase updates the spectra never change
	fk0 := frc.Fk.Clone()
	mk0 := frc.Mk.Clone()
	for i := 0; i < 10; i++ {
		frc.Step()
	}
	if !frc.Fk.Equal(fk0) || !frc.Mk.Equal(mk0) {
		tst.Errorf("held spectra must not change")
		return
	}
}

func Test_frc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frc02. phase rotation at the correlation cadence")

	sim, g, dec, grp := frcRig()
	chk.IntAssert(sim.Ftime, 2)
	rnd.Init(sim.Forcing.Seed)
	frc := NewForcing(sim, g, dec, grp, nil, nil)
	fk0 := frc.Fk.Clone()
	mk0 := frc.Mk.Clone()

	// the first step holds the phases
	frc.Step()
	if !frc.Fk.Equal(fk0) {
		tst.Errorf("phases must hold until the correlation time")
		return
	}

	// the second step rotates them
	frc.Step()
	if frc.Fk.Equal(fk0) {
		tst.Errorf("phases must rotate at the correlation time")
		return
	}
	checkPairs(tst, "fk", frc.Fk)
	checkPairs(tst, "mk", frc.Mk)

	// one global phasor of unit modulus rotates every mode
	var ratio complex128
	for ci := 0; ci < dec.Ni(); ci++ {
		gi := dec.Ista + ci
		if gi == 0 {
			continue
		}
		for j := 0; j < dec.N; j++ {
			if fk0.C[ci][j] == 0 {
				continue
			}
			r := frc.Fk.C[ci][j] / fk0.C[ci][j]
			if ratio == 0 {
				ratio = r
				chk.Float64(tst, "modulus", 1e-12, cmplx.Abs(r), 1.0)
				continue
			}
			if cmplx.Abs(r-ratio) > 1e-12 {
				tst.Errorf("rotation must be the same for every mode: %v vs %v", r, ratio)
				return
			}
		}
	}

	// the first column rotates with the phasor on ky > 0 and its conjugate
	// on ky < 0
	if dec.Ista == 0 {
		for j := 1; j < dec.N; j++ {
			if fk0.C[0][j] == 0 {
				continue
			}
			r := frc.Fk.C[0][j] / fk0.C[0][j]
			want := ratio
			if g.Ka[j] < 0 {
				want = cmplx.Conj(ratio)
			}
			if cmplx.Abs(r-want) > 1e-12 {
				tst.Errorf("first column rotation is wrong at j=%d: %v vs %v", j, r, want)
				return
			}
		}
	}

	// corr=0 draws an independent phasor of unit modulus for the magnetic
	// stirring
	for ci := 0; ci < dec.Ni(); ci++ {
		for j := 0; j < dec.N; j++ {
			if mk0.C[ci][j] == 0 {
				continue
			}
			chk.Float64(tst, "mk modulus", 1e-12, cmplx.Abs(frc.Mk.C[ci][j]), cmplx.Abs(mk0.C[ci][j]))
		}
	}
}

func Test_frc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frc03. fully correlated stirring rotates together")

	sim, g, dec, grp := frcRig()
	sim.Forcing.Corr = 1.0
	rnd.Init(sim.Forcing.Seed)
	frc := NewForcing(sim, g, dec, grp, nil, nil)
	fk0 := frc.Fk.Clone()
	mk0 := frc.Mk.Clone()

	frc.Step()
	frc.Step()

	for ci := 0; ci < dec.Ni(); ci++ {
		gi := dec.Ista + ci
		if gi == 0 {
			continue
		}
		for j := 0; j < dec.N; j++ {
			if fk0.C[ci][j] == 0 || mk0.C[ci][j] == 0 {
				continue
			}
			rf := frc.Fk.C[ci][j] / fk0.C[ci][j]
			rm := frc.Mk.C[ci][j] / mk0.C[ci][j]
			if cmplx.Abs(rf-rm) > 1e-13 {
				tst.Errorf("corr=1 must rotate both spectra together: %v vs %v", rf, rm)
				return
			}
		}
	}
}

func Test_frc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frc04. replaying phase updates for restarts")

	sim, g, dec, grp := frcRig()

	rnd.Init(sim.Forcing.Seed)
	fa := NewForcing(sim, g, dec, grp, nil, nil)
	for i := 0; i < 5; i++ {
		fa.Step()
	}

	rnd.Init(sim.Forcing.Seed)
	fb := NewForcing(sim, g, dec, grp, nil, nil)
	fb.FastForward(5)

	if !fa.Fk.Equal(fb.Fk) || !fa.Mk.Equal(fb.Mk) {
		tst.Errorf("replayed spectra must match the stepped ones exactly")
		return
	}
}
