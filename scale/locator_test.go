// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaxNLocator(t *testing.T) {
	for _, test := range []struct {
		l          MaxNLocator
		vmin, vmax float64
		want       []float64
	}{
		{MaxNLocator{NBins: 5}, 1000, 4000, []float64{1000, 2000, 3000, 4000}},
		{MaxNLocator{NBins: 5}, 0, 10, []float64{0, 2, 4, 6, 8, 10}},
		{MaxNLocator{NBins: 5}, 0, 1, []float64{0, 0.2, 0.4, 0.6000000000000001, 0.8, 1}},
		{MaxNLocator{NBins: 5}, 1100, 3900, []float64{1000, 2000, 3000, 4000}},
		{MaxNLocator{NBins: 5}, 4000, 1000, []float64{1000, 2000, 3000, 4000}},
		{MaxNLocator{NBins: 2}, 0, 100, []float64{0, 50, 100}},
		{MaxNLocator{NBins: 5, Steps: []float64{5}}, 0, 100, []float64{0, 50, 100}},
	} {
		got := test.l.TickValues(test.vmin, test.vmax)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%+v.TickValues(%v, %v) mismatch (-want +got):\n%s", test.l, test.vmin, test.vmax, d)
		}
	}
}

func TestMaxNLocatorCovers(t *testing.T) {
	l := MaxNLocator{NBins: 5}
	for _, r := range [][2]float64{
		{1000, 4000}, {123, 9876}, {-50, 75}, {0.001, 0.0037},
		{531000, 532300}, {-1e6, -2e5}, {7, 7.5},
	} {
		ticks := l.TickValues(r[0], r[1])
		if len(ticks) < 2 {
			t.Errorf("%v: want >= 2 ticks, got %v", r, ticks)
			continue
		}
		if ticks[0] > r[0] || ticks[len(ticks)-1] < r[1] {
			t.Errorf("%v: ticks %v do not cover range", r, ticks)
		}
		if len(ticks) > l.NBins+2 {
			t.Errorf("%v: too many ticks %v", r, ticks)
		}
		step := ticks[1] - ticks[0]
		if !isNiceStep(step) {
			t.Errorf("%v: step %v is not a nice step", r, step)
		}
		for i := 1; i < len(ticks); i++ {
			if d := ticks[i] - ticks[i-1]; math.Abs(d-step) > 1e-9*math.Abs(step) {
				t.Errorf("%v: uneven ticks %v", r, ticks)
				break
			}
		}
	}
}

// isNiceStep reports whether x is 1, 2, 4, or 5 times a power of ten.
func isNiceStep(x float64) bool {
	mant := x / math.Pow(10, math.Floor(math.Log10(x)))
	for _, s := range []float64{1, 2, 4, 5, 10} {
		if math.Abs(mant-s) < 1e-9 {
			return true
		}
	}
	return false
}

func TestMaxNLocatorNegativeOffset(t *testing.T) {
	// A narrow range far below zero is ticked relative to a negative
	// offset; the edge tolerance must not add a tick past either end.
	const vmin, vmax = -1824762.649513636, -1824762.6494997006
	ticks := (MaxNLocator{NBins: 5}).TickValues(vmin, vmax)
	if len(ticks) != 5 {
		t.Fatalf("got %d ticks %v, want 5", len(ticks), ticks)
	}
	step := ticks[1] - ticks[0]
	if ticks[1] <= vmin || ticks[len(ticks)-2] >= vmax {
		t.Errorf("ticks %v extend more than one step past [%v, %v]", ticks, vmin, vmax)
	}
	for i := 1; i < len(ticks); i++ {
		if d := ticks[i] - ticks[i-1]; math.Abs(d-step) > 1e-3*step {
			t.Errorf("uneven ticks %v", ticks)
			break
		}
	}
}

func TestEdgeIntegerTolerance(t *testing.T) {
	pos := edgeInteger{step: 4e-6, offset: 1e6}
	neg := edgeInteger{step: 4e-6, offset: -1e6}
	for _, ms := range []float64{0.01, 0.2, 0.99} {
		if pos.closeTo(ms, 0) != neg.closeTo(ms, 0) || pos.closeTo(ms, 1) != neg.closeTo(ms, 1) {
			t.Errorf("closeTo(%v) differs between offsets 1e6 and -1e6", ms)
		}
	}
	if !neg.closeTo(0.01, 0) {
		t.Errorf("offset -1e6: 0.01 step is not close to the edge")
	}
}

func TestMaxNLocatorDegenerate(t *testing.T) {
	l := MaxNLocator{NBins: 5}
	for _, r := range [][2]float64{
		{0, 0}, {5, 5}, {-3e4, -3e4}, {math.NaN(), 1}, {0, math.Inf(1)},
	} {
		ticks := l.TickValues(r[0], r[1])
		for _, x := range ticks {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Errorf("%v: non-finite tick in %v", r, ticks)
			}
		}
	}
}

func TestExtendedSteps(t *testing.T) {
	want := []float64{0.1, 0.2, 0.4, 0.5, 1, 2, 4, 5, 10, 20}
	if d := cmp.Diff(want, (MaxNLocator{}).extendedSteps()); d != "" {
		t.Errorf("default steps mismatch (-want +got):\n%s", d)
	}
	want = []float64{0.1, 0.25, 1, 2.5, 10, 25}
	if d := cmp.Diff(want, (MaxNLocator{Steps: []float64{2.5}}).extendedSteps()); d != "" {
		t.Errorf("steps {2.5} mismatch (-want +got):\n%s", d)
	}
}
