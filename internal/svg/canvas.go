// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"image/color"
	"io"

	"github.com/aclements/go-scalebar/internal/viewport"
	"github.com/aclements/go-scalebar/scalebar"
)

// pxPerPoint converts font points to SVG user units at 96 DPI.
const pxPerPoint = 96.0 / 72

// A Canvas is a scalebar.Surface that writes SVG.
type Canvas struct {
	*SVG
	*viewport.Viewport
}

// NewCanvas returns a Canvas showing [x0, x1] × [y0, y1] on a width ×
// height SVG written to w. The caller must call Done when finished.
func NewCanvas(w io.Writer, x0, x1, y0, y1 float64, width, height int) *Canvas {
	c := &Canvas{New(w, width, height), viewport.New(x0, x1, y0, y1, width, height)}
	c.SetLineWidth(1)
	return c
}

// shape appends the polyline through xs, ys to the current path.
// Closed axis-aligned rectangles are written as a relative Rect.
func (c *Canvas) shape(xs, ys []float64, closed bool) *SVG {
	pxs, pys := c.Points(xs, ys)
	if isRect(pxs, pys) {
		return c.Rect(pxs[0], pys[0], pxs[1]-pxs[0], pys[2]-pys[1])
	}
	c.Poly(pxs, pys)
	if closed {
		c.ClosePath()
	}
	return c.SVG
}

// isRect reports whether xs, ys is a closed five-point rectangle
// whose first edge is horizontal.
func isRect(xs, ys []float64) bool {
	return len(xs) == 5 && len(ys) == 5 &&
		xs[0] == xs[3] && xs[1] == xs[2] && xs[4] == xs[0] &&
		ys[0] == ys[1] && ys[2] == ys[3] && ys[4] == ys[0]
}

func (c *Canvas) Fill(xs, ys []float64, col color.Color) {
	c.SetFill(col)
	c.shape(xs, ys, true).Fill()
	c.SetFill(nil)
}

func (c *Canvas) Stroke(xs, ys []float64, col color.Color) {
	c.SetStroke(col)
	c.shape(xs, ys, false).Stroke()
	c.SetStroke(nil)
}

func (c *Canvas) Text(x, y float64, opts scalebar.TextOpts, text string) {
	px, py := c.Point(x, y)
	c.SetFill(color.Black)
	c.SVG.Text(px, py, TextOpts{
		Anchor:   opts.Anchor,
		Baseline: opts.Baseline,
		Bold:     opts.Weight == scalebar.WeightBold,
		FontSize: opts.FontSize * pxPerPoint,
	}, text)
	c.SetFill(nil)
}
