// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import (
	"github.com/cpmech/gosl/fun"

	"github.com/AlexJamesWright/GHOST/grid"
	"github.com/AlexJamesWright/GHOST/inp"
)

// SetInitial fills the evolved fields of sv from the inic section of the
// input. Fields without an entry start from zero. A "mode" entry plants a
// single mode with physical amplitude a0; a "band" entry fills
// kdn ≤ |k| ≤ kup with amplitude a0·shape(|k|) and reproducible phases.
func SetInitial(sv Solver, sim *inp.Simulation, g *grid.Grid, dec *grid.Decomp) (err error) {
	names := sv.Names()
	flds := sv.Fields()
	n2 := float64(dec.N) * float64(dec.N)
	for m, name := range names {
		f := flds[m]
		f.Zero()
		ini := sim.Ini(name)
		if ini == nil {
			continue
		}
		switch ini.Type {
		case "zero":
		case "mode":
			kx, ky := ini.Kx, ini.Ky
			if kx < 0 {
				kx, ky = -kx, -ky
			}
			f.SetMode(kx, ky, complex(n2*ini.A0/2.0, 0))
		case "band":
			var shape fun.TimeSpace
			if ini.Shape != "" {
				shape, err = sim.Functions.Get(ini.Shape)
				if err != nil {
					return
				}
			}
			bandField(g, dec, f, ini.A0, ini.Kdn, ini.Kup, shape, ini.Seed)
		}
	}
	return
}
