// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

type Linear struct {
	min, width float64
}

// NewLinearRange returns a linear scale mapping from to 0 and to to
// 1. from > to gives an inverted scale.
func NewLinearRange(from, to float64) Linear {
	return Linear{from, to - from}
}

func (s Linear) Of(x float64) float64 {
	if s.width == 0 {
		return 0
	}
	return (x - s.min) / s.width
}

// Domain returns the inputs that map to 0 and 1.
func (s Linear) Domain() (from, to float64) {
	return s.min, s.min + s.width
}

func (s Linear) bounds() (lo, hi float64) {
	lo, hi = s.Domain()
	if hi < lo {
		lo, hi = hi, lo
	}
	return
}

// Ticks returns at most about n+1 round-numbered major ticks within
// the domain of s in increasing order. Linear scales have no minor
// ticks.
func (s Linear) Ticks(n int) (major, minor []float64) {
	lo, hi := s.bounds()
	minor = []float64{}
	for _, x := range (MaxNLocator{NBins: n}).TickValues(lo, hi) {
		if x >= lo && x <= hi {
			major = append(major, x)
		}
	}
	return
}

// Nice expands the domain of s to the outermost ticks chosen for n
// bins, so the domain begins and ends on major ticks. The direction
// of s is kept.
func (s *Linear) Nice(n int) {
	lo, hi := s.bounds()
	ticks := (MaxNLocator{NBins: n}).TickValues(lo, hi)
	if len(ticks) < 2 {
		return
	}
	first, last := ticks[0], ticks[len(ticks)-1]
	if s.width < 0 {
		first, last = last, first
	}
	s.min, s.width = first, last-first
}

var _ Interface = Linear{}
