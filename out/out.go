// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the cadenced outputs of a run: encoded field
// checkpoints, reduced balance series, shell spectra, and the restart reader
package out

import (
	"bytes"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/AlexJamesWright/GHOST/comm"
	"github.com/AlexJamesWright/GHOST/fftp"
	"github.com/AlexJamesWright/GHOST/field"
	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/inp"
)

// BalanceSpec names one column of the balance series: the reduced quadratic
// sum Σ (k²)^pow |f|² of one evolved field
type BalanceSpec struct {
	Name  string // column name
	Field int    // index of the evolved field
	Pow   int    // power of k² inside the sum
}

// SpectrumSpec names one shell-binned curve written at the spectrum cadence
type SpectrumSpec struct {
	Name  string // curve name, part of the file name
	Field int    // index of the evolved field
	Pow   int    // power of k² inside the sum
}

// Writer handles the outputs of one rank
type Writer struct {

	// access
	Sim *inp.Simulation
	G   *grid.Grid
	Dec *grid.Decomp
	Grp comm.Group
	Pl  *fftp.Plan

	// scratch
	phys *field.Physical
	bal  *os.File // balance series, open on rank 0 only
}

// NewWriter allocates a writer. balNames are the balance column names, one
// per configured quantity. resume keeps an existing balance file, appending
// to it; otherwise the file is recreated with a header row readable by
// io.ReadTable.
func NewWriter(sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp, grp comm.Group, pl *fftp.Plan, balNames []string, resume bool) (o *Writer, err error) {
	o = new(Writer)
	o.Sim = sim
	o.G = g
	o.Dec = dec
	o.Grp = grp
	o.Pl = pl
	o.phys = field.NewPhysical(dec)
	if grp.Rank() == 0 && sim.Time.Cstep > 0 && !sim.Time.Bench {
		fn := io.Sf("%s/%s_balance.txt", sim.DirOut, sim.Key)
		if resume {
			o.bal, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return nil, chk.Err("cannot open balance file:\n%v", err)
			}
		} else {
			o.bal, err = os.Create(fn)
			if err != nil {
				return nil, chk.Err("cannot create balance file:\n%v", err)
			}
			hdr := "time"
			for _, name := range balNames {
				hdr += " " + name
			}
			o.bal.WriteString(hdr + "\n")
		}
	}
	return
}

// Close releases the balance file
func (o *Writer) Close() {
	if o.bal != nil {
		o.bal.Close()
		o.bal = nil
	}
}

// QuadSum computes the local part of Σ (k²)^pow |f|² over the slab. Interior
// columns count twice for the unstored conjugate half; the first and the last
// column count once. The sum carries the 1/n⁴ descaling of the working
// coefficients, so the reduced total is in physical units.
func QuadSum(g *grid.Grid, dec *grid.Decomp, f *field.Spectral, pow int) (sum float64) {
	n := dec.N
	tmp := 1.0 / (float64(n) * float64(n) * float64(n) * float64(n))
	for ci := 0; ci < dec.Ni(); ci++ {
		gi := dec.Ista + ci
		w := 2.0
		if gi == 0 || gi == n/2 {
			w = 1.0
		}
		for j := 0; j < n; j++ {
			k2 := g.Ka2[ci][j]
			if k2 < g.Tiny {
				continue
			}
			fac := 1.0
			switch pow {
			case 1:
				fac = k2
			case 2:
				fac = k2 * k2
			}
			c := f.C[ci][j]
			sum += w * fac * (real(c)*real(c) + imag(c)*imag(c)) * tmp
		}
	}
	return
}

// ShellSum accumulates the local part of Σ (k²)^pow |f|² into integer shells
// s = round(|k|), s in [0, n/2]. Weights and descaling as in QuadSum.
func ShellSum(g *grid.Grid, dec *grid.Decomp, f *field.Spectral, pow int) (curve []float64) {
	n := dec.N
	curve = make([]float64, n/2+1)
	tmp := 1.0 / (float64(n) * float64(n) * float64(n) * float64(n))
	for ci := 0; ci < dec.Ni(); ci++ {
		gi := dec.Ista + ci
		w := 2.0
		if gi == 0 || gi == n/2 {
			w = 1.0
		}
		for j := 0; j < n; j++ {
			k2 := g.Ka2[ci][j]
			if k2 < g.Tiny {
				continue
			}
			s := int(math.Sqrt(k2) + 0.501)
			if s > n/2 {
				continue
			}
			fac := 1.0
			switch pow {
			case 1:
				fac = k2
			case 2:
				fac = k2 * k2
			}
			c := f.C[ci][j]
			curve[s] += w * fac * (real(c)*real(c) + imag(c)*imag(c)) * tmp
		}
	}
	return
}

// Balance reduces the configured quadratic quantities and appends one row to
// the balance series on rank 0. Columns are: time, then one value per spec.
func (o *Writer) Balance(t float64, specs []BalanceSpec, flds []*field.Spectral) (err error) {
	loc := make([]float64, len(specs))
	tot := make([]float64, len(specs))
	for i, sp := range specs {
		loc[i] = QuadSum(o.G, o.Dec, flds[sp.Field], sp.Pow)
	}
	o.Grp.SumFloats(tot, loc, 0)
	if o.Grp.Rank() == 0 && o.bal != nil {
		row := io.Sf("%23.15e", t)
		for _, v := range tot {
			row += io.Sf(" %23.15e", v)
		}
		_, err = o.bal.WriteString(row + "\n")
		if err != nil {
			return chk.Err("cannot append to balance file:\n%v", err)
		}
	}
	return
}

// Spectrum reduces the configured shell curves and writes one file per curve
// at the given output index
func (o *Writer) Spectrum(specs []SpectrumSpec, flds []*field.Spectral, idx int) (err error) {
	n := o.Dec.N
	for _, sp := range specs {
		loc := ShellSum(o.G, o.Dec, flds[sp.Field], sp.Pow)
		tot := make([]float64, n/2+1)
		o.Grp.SumFloats(tot, loc, 0)
		if o.Grp.Rank() == 0 {
			var b bytes.Buffer
			io.Ff(&b, "shell %s\n", sp.Name)
			for s := 1; s <= n/2; s++ {
				io.Ff(&b, "%4d %23.15e\n", s, tot[s])
			}
			io.WriteFileD(o.Sim.DirOut, io.Sf("%s_%s_%010d.txt", o.Sim.Key, sp.Name, idx), &b)
		}
	}
	return
}
