// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/AlexJamesWright/GHOST/field"
)

// fieldBlob is the encoded form of one physical slab
type fieldBlob struct {
	N    int         // grid size
	Jsta int         // first row of the slab
	Jend int         // last row of the slab
	Rows [][]float64 // slab values in physical units
}

// Summary records where a run stopped and how its outputs are indexed. It is
// written by rank 0 next to the checkpoints and read back on restart.
type Summary struct {
	Key   string  // run key
	N     int     // grid size
	Nproc int     // ranks that wrote the checkpoints
	Dt    float64 // step size
	Step  int     // completed steps at the last checkpoint
	Obin  int     // next field output index
	Ospec int     // next spectrum output index
}

// fieldPath builds the per-rank checkpoint file name of one field
func fieldPath(dir, key string, proc int, name string, idx int) string {
	return io.Sf("%s/%s_p%d_%s_%010d.res", dir, key, proc, name, idx)
}

// sumPath builds the summary file name
func sumPath(dir, key string) string {
	return io.Sf("%s/%s_sum.res", dir, key)
}

// WriteFields checkpoints every evolved field at output index idx: each slab
// is inverse-transformed, descaled to physical units and encoded to a
// per-rank file. Rank 0 also rewrites the summary.
func (o *Writer) WriteFields(names []string, flds []*field.Spectral, idx, step, ospec int) (err error) {
	n := o.Dec.N
	n2 := float64(n) * float64(n)
	for m, f := range flds {
		o.Pl.Inverse(f, o.phys)
		blob := fieldBlob{N: n, Jsta: o.Dec.Jsta, Jend: o.Dec.Jend}
		blob.Rows = make([][]float64, o.Dec.Nj())
		for rj := range blob.Rows {
			blob.Rows[rj] = make([]float64, n)
			for i := 0; i < n; i++ {
				blob.Rows[rj][i] = o.phys.R[rj][i] / n2
			}
		}
		fn := fieldPath(o.Sim.DirOut, o.Sim.Key, o.Dec.Proc, names[m], idx)
		fil, ferr := os.Create(fn)
		if ferr != nil {
			return chk.Err("cannot create checkpoint file %q:\n%v", fn, ferr)
		}
		enc := utl.GetEncoder(fil, o.Sim.EncType)
		err = enc.Encode(&blob)
		fil.Close()
		if err != nil {
			return chk.Err("cannot encode checkpoint %q:\n%v", fn, err)
		}
	}
	if o.Grp.Rank() == 0 {
		sum := Summary{
			Key:   o.Sim.Key,
			N:     n,
			Nproc: o.Dec.Nproc,
			Dt:    o.Sim.Time.Dt,
			Step:  step,
			Obin:  idx + 1,
			Ospec: ospec,
		}
		err = SaveSum(o.Sim.DirOut, &sum)
	}
	return
}

// SaveSum writes the summary file
func SaveSum(dir string, sum *Summary) (err error) {
	fn := sumPath(dir, sum.Key)
	fil, ferr := os.Create(fn)
	if ferr != nil {
		return chk.Err("cannot create summary file %q:\n%v", fn, ferr)
	}
	defer fil.Close()
	enc := utl.GetEncoder(fil, "gob")
	err = enc.Encode(sum)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return
}

// ReadSum reads the summary file of a previous run
func ReadSum(dir, key string) (sum *Summary, err error) {
	fn := sumPath(dir, key)
	fil, ferr := os.Open(fn)
	if ferr != nil {
		return nil, chk.Err("cannot open summary file %q:\n%v", fn, ferr)
	}
	defer fil.Close()
	sum = new(Summary)
	dec := utl.GetDecoder(fil, "gob")
	err = dec.Decode(sum)
	if err != nil {
		return nil, chk.Err("cannot decode summary %q:\n%v", fn, err)
	}
	return
}

// ReadFields loads the checkpoints of output index idx into the given
// spectral slabs, forward-transforming the stored physical values. The
// decomposition must match the one that wrote the files.
func (o *Writer) ReadFields(names []string, flds []*field.Spectral, idx int, dir string) (err error) {
	if dir == "" {
		dir = o.Sim.DirOut
	}
	n := o.Dec.N
	for m := range flds {
		fn := fieldPath(dir, o.Sim.Key, o.Dec.Proc, names[m], idx)
		fil, ferr := os.Open(fn)
		if ferr != nil {
			return chk.Err("cannot open checkpoint file %q:\n%v", fn, ferr)
		}
		var blob fieldBlob
		dec := utl.GetDecoder(fil, o.Sim.EncType)
		err = dec.Decode(&blob)
		fil.Close()
		if err != nil {
			return chk.Err("cannot decode checkpoint %q:\n%v", fn, err)
		}
		if blob.N != n || blob.Jsta != o.Dec.Jsta || blob.Jend != o.Dec.Jend {
			return chk.Err("checkpoint %q does not match the decomposition: n=%d j=[%d,%d]", fn, blob.N, blob.Jsta, blob.Jend)
		}
		for rj := range blob.Rows {
			copy(o.phys.R[rj], blob.Rows[rj])
		}
		o.Pl.Forward(o.phys, flds[m])
	}
	return
}
