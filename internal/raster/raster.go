// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws onto an RGBA image and encodes it as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/aclements/go-scalebar/internal/viewport"
	"github.com/aclements/go-scalebar/scalebar"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DPI is the resolution used to convert font points to pixels.
const DPI = 96

// A Canvas is a scalebar.Surface backed by an image.
type Canvas struct {
	*viewport.Viewport

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	img           *image.NRGBA
	ras           *vector.Rasterizer
	ctx           *freetype.Context
	regular, bold *truetype.Font
	err           error
}

// NewCanvas returns a white width × height canvas showing [x0, x1] ×
// [y0, y1].
func NewCanvas(x0, x1, y0, y1 float64, width, height int) (*Canvas, error) {
	regular, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := freetype.ParseFont(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(DPI)
	ctx.SetDst(img)
	ctx.SetClip(img.Bounds())
	ctx.SetSrc(image.Black)

	return &Canvas{
		Viewport:  viewport.New(x0, x1, y0, y1, width, height),
		LineWidth: 1,
		img:       img,
		ras:       vector.NewRasterizer(width, height),
		ctx:       ctx,
		regular:   regular,
		bold:      bold,
	}, nil
}

// Image returns the canvas's image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Err returns the first error encountered while drawing text.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

func (c *Canvas) draw(col color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.ras.Reset(c.Width, c.Height)
}

func (c *Canvas) Fill(xs, ys []float64, col color.Color) {
	pxs, pys := c.Points(xs, ys)
	if len(pxs) < 3 || c.empty() {
		return
	}
	c.ras.MoveTo(float32(pxs[0]), float32(pys[0]))
	for i := 1; i < len(pxs); i++ {
		c.ras.LineTo(float32(pxs[i]), float32(pys[i]))
	}
	c.ras.ClosePath()
	c.draw(col)
}

// Stroke draws each segment of the polyline as a quad LineWidth
// pixels wide. Segments are rasterized separately so that crossing
// segments do not cancel out.
func (c *Canvas) Stroke(xs, ys []float64, col color.Color) {
	pxs, pys := c.Points(xs, ys)
	if c.empty() {
		return
	}
	hw := c.LineWidth / 2
	for i := 1; i < len(pxs); i++ {
		x0, y0, x1, y1 := pxs[i-1], pys[i-1], pxs[i], pys[i]
		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		c.ras.MoveTo(float32(x0+nx), float32(y0+ny))
		c.ras.LineTo(float32(x1+nx), float32(y1+ny))
		c.ras.LineTo(float32(x1-nx), float32(y1-ny))
		c.ras.LineTo(float32(x0-nx), float32(y0-ny))
		c.ras.ClosePath()
		c.draw(col)
	}
}

func (c *Canvas) Text(x, y float64, opts scalebar.TextOpts, text string) {
	f := c.regular
	if opts.Weight == scalebar.WeightBold {
		f = c.bold
	}
	size := opts.FontSize
	if size == 0 {
		size = scalebar.MediumFontSize
	}

	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: DPI})
	defer face.Close()
	width := font.MeasureString(face, text)
	m := face.Metrics()

	px, py := c.Point(x, y)
	dot := fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(py * 64)}
	switch opts.Anchor {
	case scalebar.AnchorMiddle:
		dot.X -= width / 2
	case scalebar.AnchorEnd:
		dot.X -= width
	}
	switch opts.Baseline {
	case scalebar.BaselineTop:
		dot.Y += m.Ascent
	case scalebar.BaselineMiddle:
		dot.Y += (m.Ascent - m.Descent) / 2
	case scalebar.BaselineBottom:
		dot.Y -= m.Descent
	}

	c.ctx.SetFont(f)
	c.ctx.SetFontSize(size)
	if _, err := c.ctx.DrawString(text, dot); err != nil && c.err == nil {
		c.err = fmt.Errorf("drawing %q: %w", text, err)
	}
}

// WritePNG encodes the canvas as a PNG to w.
func (c *Canvas) WritePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.img)
}
