// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// floorDiv returns the floored quotient and non-negative (for
// positive step) remainder of x / step.
func floorDiv(x, step float64) (d, m float64) {
	d = math.Floor(x / step)
	m = x - d*step
	return
}
