// Copyright 2017 The GHOST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psm

import "math"

// modeAngle returns a reproducible angle in [0,2π) for the mode at global
// indices (i,j). The seed and the indices are mixed with a splitmix64 round,
// so the angle does not depend on the domain decomposition.
func modeAngle(seed, i, j int) float64 {
	x := uint64(seed)*0x9e3779b97f4a7c15 + uint64(i)*0xbf58476d1ce4e5b9 + uint64(j)*0x94d049bb133111eb
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return 2.0 * math.Pi * float64(x>>11) / float64(1<<53)
}
