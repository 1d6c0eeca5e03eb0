// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-scalebar/scale"
	"github.com/aclements/go-scalebar/scalebar"
)

// FrameFormat draws a border around a map with inward ticks labeled
// in kilometres. Lengths are fractions of the axis spans.
type FrameFormat struct {
	tickLen, textSep float64
	ticks            int
	tickColor        color.Color
}

var defaultFrame = FrameFormat{tickLen: 0.015, textSep: 0.01, ticks: 5}

func (f *FrameFormat) Draw(s scalebar.Surface) {
	x0, x1 := s.XLim()
	y0, y1 := s.YLim()
	tickColor := f.tickColor
	if tickColor == nil {
		tickColor = color.Black
	}

	s.Stroke([]float64{x0, x1, x1, x0, x0}, []float64{y0, y0, y1, y1, y0}, tickColor)

	lOpts := scalebar.TextOpts{FontSize: scalebar.MediumFontSize}

	// Eastings along the bottom
	tl, sep := f.tickLen*(y1-y0), f.textSep*(y1-y0)
	lOpts.Anchor, lOpts.Baseline = scalebar.AnchorMiddle, scalebar.BaselineBottom
	for _, x := range f.axisTicks(x0, x1) {
		s.Stroke([]float64{x, x}, []float64{y0, y0 + tl}, tickColor)
		s.Text(x, y0+tl+sep, lOpts, scalebar.FormatDistance(x/1000))
	}

	// Northings along the left
	tl, sep = f.tickLen*(x1-x0), f.textSep*(x1-x0)
	lOpts.Anchor, lOpts.Baseline = scalebar.AnchorStart, scalebar.BaselineMiddle
	for _, y := range f.axisTicks(y0, y1) {
		s.Stroke([]float64{x0, x0 + tl}, []float64{y, y}, tickColor)
		s.Text(x0+tl+sep, y, lOpts, scalebar.FormatDistance(y/1000))
	}
}

// axisTicks returns the ticks of the axis from lo to hi, snapped out
// to round numbers and then cropped back to the visible range.
func (f *FrameFormat) axisTicks(lo, hi float64) []float64 {
	if lo == hi {
		return nil
	}
	nice := scale.NewLinearRange(lo, hi)
	nice.Nice(f.ticks)
	major, _ := nice.Ticks(f.ticks)

	out := scale.NewOutputScale(0, 1)
	out.Crop()
	return visibleTicks(major, scale.NewLinearRange(lo, hi), out)
}

// visibleTicks returns the ticks that map through s into out's range.
func visibleTicks(ticks []float64, s scale.Interface, out scale.OutputScale) []float64 {
	var vis []float64
	for _, t := range ticks {
		if _, ok := out.Of(s.Of(t)); ok {
			vis = append(vis, t)
		}
	}
	return vis
}
