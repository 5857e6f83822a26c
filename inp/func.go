// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, fband, myprofile1, etc.
	Type string     `json:"type"` // type of function. ex: cte, lin
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds all amplitude profile functions of a run
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn fun.TimeSpace, err error) {
	if name == "zero" || name == "none" {
		fcn = &fun.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// PlotAll plots all functions over the wavenumber interval [ki,kf]
func (o FuncsData) PlotAll(ki, kf float64, np int, dirout, fnkey string) {
	if np < 2 {
		np = 101
	}
	for _, f := range o {
		ff, err := o.Get(f.Name)
		if err != nil {
			chk.Panic("%v", err)
		}
		if ff != nil {
			K := utl.LinSpace(ki, kf, np)
			F := make([]float64, np)
			for i, k := range K {
				F[i] = ff.F(k, nil)
			}
			plt.Reset(false, nil)
			plt.Plot(K, F, &plt.A{C: "b", Ls: "-"})
			plt.Gll("$|k|$", f.Name, nil)
			plt.Save(dirout, io.Sf("functions-%s-%s", fnkey, f.Name))
		}
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	fun.G_extraindent = "        "
	return io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [\n%v\n      ]\n    }", o.Name, o.Type, o.Prms)
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
