// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ghostbal renders the text outputs of a run in the terminal: the balance
// series and the shell spectra written next to the checkpoints.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fn, fnkey := io.ArgToFilename(0, "", ".txt", true)
	height := io.ArgToInt(1, 10)
	width := io.ArgToInt(2, 80)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"balance series or spectrum file", "fn", fn,
		"graph height", "height", height,
		"graph width", "width", width,
	))

	// read table; the first column is the abscissa: time or shell
	keys, res, err := io.ReadTable(fn)
	if err != nil {
		chk.Panic("cannot read %q:\n%v", fn, err)
	}
	if len(keys) < 2 {
		chk.Panic("file %q has no data columns", fn)
	}
	absc := keys[0]

	// one graph per column
	for _, key := range keys[1:] {
		data := res[key]
		if len(data) == 0 {
			continue
		}
		io.Pf("\n%s over %s: min=%g max=%g sum=%g\n", key, absc, floats.Min(data), floats.Max(data), floats.Sum(data))
		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(io.Sf("%s (%s)", key, fnkey)),
		)
		io.Pf("%v\n", graph)
	}
}
