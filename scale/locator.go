// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"
)

var nan = math.NaN()

// DefaultSteps are the step multipliers used when a MaxNLocator has
// no Steps.
var DefaultSteps = []float64{1, 2, 4, 5, 10}

// MaxNLocator picks at most about NBins+1 evenly spaced ticks whose
// step is one of Steps times a power of ten.
//
// The returned ticks cover [vmin, vmax]: the first tick is <= vmin
// and the last is >= vmax, so a range can be snapped outward to round
// numbers by taking the outermost ticks.
type MaxNLocator struct {
	// NBins is the maximum number of intervals. If <= 0, 10 is used.
	NBins int

	// Steps are the acceptable step multipliers in [1, 10]. 1 and
	// 10 are added if missing. If nil, DefaultSteps is used.
	Steps []float64

	// MinNTicks is the minimum number of ticks that must fall
	// within [vmin, vmax]. If <= 0, 2 is used.
	MinNTicks int
}

func (l MaxNLocator) nbins() int {
	if l.NBins <= 0 {
		return 10
	}
	return l.NBins
}

func (l MaxNLocator) minNTicks() int {
	if l.MinNTicks <= 0 {
		return 2
	}
	return l.MinNTicks
}

// extendedSteps returns the validated steps bracketed by a decade
// below and the first step of the decade above.
func (l MaxNLocator) extendedSteps() []float64 {
	steps := l.Steps
	if len(steps) == 0 {
		steps = DefaultSteps
	}
	steps = append([]float64(nil), steps...)
	sort.Float64s(steps)
	if steps[0] < 1 || steps[len(steps)-1] > 10 {
		panic("steps must be in [1, 10]")
	}
	if steps[0] != 1 {
		steps = append([]float64{1}, steps...)
	}
	if steps[len(steps)-1] != 10 {
		steps = append(steps, 10)
	}

	ext := make([]float64, 0, 2*len(steps))
	for _, s := range steps[:len(steps)-1] {
		ext = append(ext, 0.1*s)
	}
	ext = append(ext, steps...)
	return append(ext, 10*steps[1])
}

// TickValues returns ticks spanning [vmin, vmax] in increasing order.
func (l MaxNLocator) TickValues(vmin, vmax float64) []float64 {
	vmin, vmax = nonsingular(vmin, vmax, 1e-13, 1e-14)
	nbins := l.nbins()
	scl, offset := scaleRange(vmin, vmax, nbins)
	vmin -= offset
	vmax -= offset

	steps := l.extendedSteps()
	rawStep := (vmax - vmin) / float64(nbins)

	// Start at the smallest step that is at least the raw step and
	// fall back to smaller steps until enough ticks land in range.
	istep := len(steps) - 1
	for i, s := range steps {
		if s*scl >= rawStep {
			istep = i
			break
		}
	}

	var ticks []float64
	for i := istep; i >= 0; i-- {
		step := steps[i] * scl
		bestMin := math.Floor(vmin/step) * step
		edge := edgeInteger{step, offset}
		low := edge.le(vmin - bestMin)
		high := edge.ge(vmax - bestMin)

		ticks = ticks[:0]
		n := 0
		for k := low; k <= high; k++ {
			t := k*step + bestMin
			ticks = append(ticks, t)
			if t >= vmin && t <= vmax {
				n++
			}
		}
		if n >= l.minNTicks() {
			break
		}
	}

	for i := range ticks {
		ticks[i] += offset
	}
	return ticks
}

// scaleRange returns a power-of-ten scale for steps over [vmin, vmax]
// and an offset to subtract when the range is tiny relative to its
// magnitude.
func scaleRange(vmin, vmax float64, n int) (scl, offset float64) {
	const threshold = 100
	dv := math.Abs(vmax - vmin)
	meanv := (vmax + vmin) / 2
	if math.Abs(meanv)/dv >= threshold {
		offset = math.Copysign(math.Pow(10, math.Floor(math.Log10(math.Abs(meanv)))), meanv)
	}
	scl = math.Pow(10, math.Floor(math.Log10(dv/float64(n))))
	return
}

// nonsingular widens a zero-width or non-finite range and orders its
// bounds.
func nonsingular(vmin, vmax, expander, tiny float64) (float64, float64) {
	if math.IsInf(vmin, 0) || math.IsInf(vmax, 0) || math.IsNaN(vmin) || math.IsNaN(vmax) {
		return -expander, expander
	}
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	maxAbs := math.Max(math.Abs(vmin), math.Abs(vmax))
	const smallestNormal = 0x1p-1022
	if maxAbs < (1e6/tiny)*smallestNormal {
		return -expander, expander
	}
	if vmax-vmin <= maxAbs*tiny {
		vmin -= expander * math.Abs(vmin)
		vmax += expander * math.Abs(vmax)
	}
	return vmin, vmax
}

// edgeInteger rounds tick indices while tolerating the precision
// lost when the range is offset far from zero.
type edgeInteger struct {
	step, offset float64
}

func (e edgeInteger) closeTo(ms, edge float64) bool {
	tol := 1e-10
	if e.offset != 0 {
		digits := math.Log10(math.Abs(e.offset) / e.step)
		tol = math.Max(1e-10, math.Pow(10, digits-12))
		tol = math.Min(0.4999, tol)
	}
	return math.Abs(ms-edge) < tol
}

// le returns the largest index whose tick is <= x.
func (e edgeInteger) le(x float64) float64 {
	d, m := floorDiv(x, e.step)
	if e.closeTo(m/e.step, 1) {
		return d + 1
	}
	return d
}

// ge returns the smallest index whose tick is >= x.
func (e edgeInteger) ge(x float64) float64 {
	d, m := floorDiv(x, e.step)
	if e.closeTo(m/e.step, 0) {
		return d
	}
	return d + 1
}

var _ Locator = MaxNLocator{}
