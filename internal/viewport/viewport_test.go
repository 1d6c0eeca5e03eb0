// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import "testing"

func TestPoint(t *testing.T) {
	v := New(0, 10000, 0, 1000, 800, 400)
	for _, test := range []struct {
		x, y, px, py float64
	}{
		{0, 0, 0, 400},
		{10000, 1000, 800, 0},
		{5000, 250, 400, 300},
		{-1000, 2000, -80, -400},
	} {
		px, py := v.Point(test.x, test.y)
		if px != test.px || py != test.py {
			t.Errorf("Point(%v, %v) = (%v, %v), want (%v, %v)", test.x, test.y, px, py, test.px, test.py)
		}
	}
	if x0, x1 := v.XLim(); x0 != 0 || x1 != 10000 {
		t.Errorf("XLim() = %v, %v", x0, x1)
	}
}

func TestPointsDegenerate(t *testing.T) {
	v := New(5, 5, 0, 0, 100, 100)
	pxs, pys := v.Points([]float64{5, 5}, []float64{0, 1})
	if pxs[0] != 0 || pys[0] != 100 || pys[1] != 100 {
		t.Errorf("got %v %v, want collapsed points at (0, 100)", pxs, pys)
	}
}

func TestInvertedAxis(t *testing.T) {
	v := New(0, 10000, 1000, 0, 800, 400)
	if y0, y1 := v.YLim(); y0 != 1000 || y1 != 0 {
		t.Errorf("YLim() = %v, %v, want 1000, 0", y0, y1)
	}
	for _, test := range []struct {
		y, py float64
	}{
		{1000, 400},
		{0, 0},
		{250, 300},
	} {
		if _, py := v.Point(0, test.y); py != test.py {
			t.Errorf("Point(0, %v) y = %v, want %v", test.y, py, test.py)
		}
	}
}
