// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalebar draws a striped distance scale bar on a map plot
// whose axes are in metres.
//
// The bar is placed in a box given as fractions of the visible axis
// ranges. Its horizontal extent is snapped outward to round-numbered
// ticks, alternating black and white stripes are drawn between
// adjacent ticks, and each tick is labeled with its distance in
// kilometres from the left end of the bar.
package scalebar

import (
	"image/color"
	"strconv"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-scalebar/scale"
)

// A Surface is a plot with linear axes that the scale bar is drawn
// on. All coordinates are in the surface's data units.
//
// Render only reads the axis limits and issues draw calls. It does no
// locking; the caller must not mutate the surface concurrently.
type Surface interface {
	XLim() (x0, x1 float64)
	YLim() (y0, y1 float64)

	// Fill fills the closed polygon with vertices (xs[i], ys[i]).
	Fill(xs, ys []float64, c color.Color)

	// Stroke draws the polyline through (xs[i], ys[i]). A polygon
	// outline repeats its first point at the end.
	Stroke(xs, ys []float64, c color.Color)

	Text(x, y float64, opts TextOpts, text string)
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is the vertical alignment of text relative to its
// position.
type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
	Weight   Weight
	FontSize float64
}

// MediumFontSize is the size, in points, of the bar's labels.
const MediumFontSize = 10

// UnitLabel is drawn above the bar.
const UnitLabel = "Km"

const metresPerUnit = 1000

// Options control the placement of a scale bar.
type Options struct {
	// AtX and AtY are the (left, right) and (lower, upper) bounds of
	// the target box in fractions of the visible axis ranges. They
	// are not validated; values outside [0, 1] place the bar
	// outside the visible area.
	AtX, AtY [2]float64

	// MaxStripes is the typical maximum number of stripes. The
	// locator may produce a few more or fewer. If <= 0, the default
	// of 5 is used.
	MaxStripes int

	// Locator picks the tick values. If nil, a MaxNLocator with
	// MaxStripes bins and steps {1, 2, 4, 5, 10} is used.
	Locator scale.Locator
}

const defaultMaxStripes = 5

// DefaultOptions returns the options used when Render is passed nil.
func DefaultOptions() *Options {
	return &Options{
		AtX:        [2]float64{0.1, 0.4},
		AtY:        [2]float64{0.05, 0.075},
		MaxStripes: defaultMaxStripes,
	}
}

func (o *Options) locator() scale.Locator {
	if o.Locator != nil {
		return o.Locator
	}
	n := o.MaxStripes
	if n <= 0 {
		n = defaultMaxStripes
	}
	return scale.MaxNLocator{NBins: n, Steps: scale.DefaultSteps}
}

// A Bar is the computed geometry of a scale bar.
type Bar struct {
	// Ticks are the stripe boundaries in increasing order.
	Ticks []float64

	// X0 and X1 are the first and last ticks. Y0 and Y1 are the
	// bottom and top of the stripes.
	X0, X1, Y0, Y1 float64

	// Margin is the length of the tick marks and the gap between
	// the bar and its labels.
	Margin float64
}

// NewBar computes the scale bar for a surface with the given axis
// limits. If opts is nil, DefaultOptions is used.
//
// The horizontal extent is snapped to the outermost ticks, while the
// vertical extent is used as given.
func NewBar(x0, x1, y0, y1 float64, opts *Options) Bar {
	if opts == nil {
		opts = DefaultOptions()
	}

	xs := scale.NewOutputScale(x0, x1)
	xs.Unclamp()
	ys := scale.NewOutputScale(y0, y1)
	ys.Unclamp()
	xt := vec.Map(xs.Map, opts.AtX[:])
	yt := vec.Map(ys.Map, opts.AtY[:])

	var b Bar
	b.Ticks = opts.locator().TickValues(xt[0], xt[1])
	if len(b.Ticks) > 0 {
		b.X0, b.X1 = b.Ticks[0], b.Ticks[len(b.Ticks)-1]
	}
	b.Y0, b.Y1 = yt[0], yt[1]
	b.Margin = 0.25 * (b.Y1 - b.Y0)
	return b
}

// Stripes returns the number of stripes in b.
func (b Bar) Stripes() int {
	if len(b.Ticks) < 2 {
		return 0
	}
	return len(b.Ticks) - 1
}

// Labels returns the label of each tick: its distance from X0 in
// kilometres.
func (b Bar) Labels() []string {
	labels := make([]string, len(b.Ticks))
	for i, x := range b.Ticks {
		labels[i] = FormatDistance((x - b.X0) / metresPerUnit)
	}
	return labels
}

// FormatDistance formats v in the shortest general form with up to
// six significant digits, like C's "%g".
func FormatDistance(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var stripeColors = [2]color.Color{color.Black, color.White}

// Draw draws b on s.
func (b Bar) Draw(s Surface) {
	// Stripes and their outlines
	for i := 0; i+1 < len(b.Ticks); i++ {
		xi0, xi1 := b.Ticks[i], b.Ticks[i+1]
		xs := []float64{xi0, xi1, xi1, xi0, xi0}
		ys := []float64{b.Y0, b.Y0, b.Y1, b.Y1, b.Y0}
		s.Fill(xs, ys, stripeColors[i%2])
		s.Stroke(xs, ys, color.Black)
	}

	// Tick marks
	for _, x := range b.Ticks {
		s.Stroke([]float64{x, x}, []float64{b.Y0, b.Y0 - b.Margin}, color.Black)
	}

	font := TextOpts{Anchor: AnchorMiddle, Weight: WeightBold, FontSize: MediumFontSize}

	unit := font
	unit.Baseline = BaselineBottom
	s.Text(0.5*(b.X0+b.X1), b.Y1+b.Margin, unit, UnitLabel)

	label := font
	label.Baseline = BaselineTop
	for i, l := range b.Labels() {
		s.Text(b.Ticks[i], b.Y0-2*b.Margin, label, l)
	}
}

// Render draws a scale bar on s using s's current axis limits. If
// opts is nil, DefaultOptions is used.
func Render(s Surface, opts *Options) {
	x0, x1 := s.XLim()
	y0, y1 := s.YLim()
	NewBar(x0, x1, y0, y1, opts).Draw(s)
}
