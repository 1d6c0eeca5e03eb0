// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aclements/go-scalebar/scalebar"
)

func TestRunSVG(t *testing.T) {
	cfg := NewConfig()
	cfg.Frame = true
	var buf bytes.Buffer
	require.NoError(t, run(cfg, zaptest.NewLogger(t), &buf))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<svg "), "output is not SVG:\n%s", out)
	for _, want := range []string{">Km</text>", ">30</text>", `<path d="M0 800h800v-800h-800z"`, "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunPNG(t *testing.T) {
	cfg := NewConfig()
	cfg.Output = filepath.Join(t.TempDir(), "bar.png")
	cfg.Width, cfg.Height = 200, 100
	require.NoError(t, run(cfg, zaptest.NewLogger(t), nil))
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "output is not a PNG")
}

func TestCommandFlags(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "bar.toml")
	require.NoError(t, os.WriteFile(conf, []byte("xlim = [0.0, 5000.0]\nmax-stripes = 2\n"), 0666))

	var buf bytes.Buffer
	cmd := newCommand(&buf)
	cmd.SetArgs([]string{"--config", conf, "--stripes", "5", "--ylim", "0,1000"})
	require.NoError(t, cmd.Execute())

	// xlim from the file, stripes from the flag: [400, 2000] in
	// 400 m steps.
	out := buf.String()
	for _, want := range []string{">0.4</text>", ">1.6</text>", ">Km</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--xlim", "1,2,3"},
		{"--stripes", "0"},
		{"--format", "gif"},
		{"extra"},
	} {
		cmd := newCommand(&bytes.Buffer{})
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		if err := cmd.Execute(); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

type strokeCounter struct {
	strokes, texts int
}

func (*strokeCounter) XLim() (float64, float64)                           { return 0, 10000 }
func (*strokeCounter) YLim() (float64, float64)                           { return 0, 10000 }
func (*strokeCounter) Fill(xs, ys []float64, c color.Color)               {}
func (s *strokeCounter) Stroke(xs, ys []float64, c color.Color)           { s.strokes++ }
func (s *strokeCounter) Text(x, y float64, _ scalebar.TextOpts, _ string) { s.texts++ }

func TestFrame(t *testing.T) {
	var s strokeCounter
	defaultFrame.Draw(&s)
	// Border plus ticks at 0, 2, 4, 6, 8, 10 km on each axis.
	if s.strokes != 13 || s.texts != 12 {
		t.Errorf("got %d strokes and %d labels, want 13 and 12", s.strokes, s.texts)
	}
}

// labelRecorder records the frame's labels.
type labelRecorder struct {
	x0, x1, y0, y1 float64
	labels         []string
}

func (r *labelRecorder) XLim() (float64, float64)             { return r.x0, r.x1 }
func (r *labelRecorder) YLim() (float64, float64)             { return r.y0, r.y1 }
func (*labelRecorder) Fill(xs, ys []float64, c color.Color)   {}
func (*labelRecorder) Stroke(xs, ys []float64, c color.Color) {}
func (r *labelRecorder) Text(x, y float64, _ scalebar.TextOpts, text string) {
	r.labels = append(r.labels, text)
}

func TestFrameCropsTicks(t *testing.T) {
	// Snapped out to [1000, 4000], only 2 and 3 km remain visible.
	for _, r := range []*labelRecorder{
		{x0: 1100, x1: 3900, y0: 1100, y1: 3900},
		{x0: 1100, x1: 3900, y0: 3900, y1: 1100},
	} {
		defaultFrame.Draw(r)
		require.Equal(t, []string{"2", "3", "2", "3"}, r.labels, "limits %v", *r)
	}
}
