// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
)

func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

func (s OutputScale) Of(x float64) (float64, bool) {
	if s.clamp == clampCrop {
		if x < 0 || x > 1 {
			return 0, false
		}
	}
	return x*(s.max-s.min) + s.min, true
}

// Map is like Of, but for use with unclamped scales where every input
// has an output. Cropped inputs map to NaN.
func (s OutputScale) Map(x float64) float64 {
	y, ok := s.Of(x)
	if !ok {
		return nan
	}
	return y
}
