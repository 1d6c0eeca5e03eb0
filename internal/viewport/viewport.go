// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport maps a rectangle of data coordinates onto an
// image whose Y axis points down.
package viewport

import "github.com/aclements/go-scalebar/scale"

type Viewport struct {
	x, y   scale.Linear
	px, py scale.OutputScale

	Width, Height int
}

// New returns a viewport showing [x0, x1] × [y0, y1] on a width ×
// height image. x0 is at the left edge and y0 at the bottom edge, so
// limits given in decreasing order give an inverted axis.
func New(x0, x1, y0, y1 float64, width, height int) *Viewport {
	v := &Viewport{
		x:      scale.NewLinearRange(x0, x1),
		y:      scale.NewLinearRange(y0, y1),
		px:     scale.NewOutputScale(0, float64(width)),
		py:     scale.NewOutputScale(float64(height), 0),
		Width:  width,
		Height: height,
	}
	v.px.Unclamp()
	v.py.Unclamp()
	return v
}

// XLim returns the x limits in the order given to New.
func (v *Viewport) XLim() (float64, float64) {
	return v.x.Domain()
}

func (v *Viewport) YLim() (float64, float64) {
	return v.y.Domain()
}

// Point maps a data coordinate to an image coordinate.
func (v *Viewport) Point(x, y float64) (px, py float64) {
	return v.px.Map(v.x.Of(x)), v.py.Map(v.y.Of(y))
}

// Points maps parallel slices of data coordinates to image
// coordinates.
func (v *Viewport) Points(xs, ys []float64) (pxs, pys []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pxs, pys = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		pxs[i], pys[i] = v.Point(xs[i], ys[i])
	}
	return
}
