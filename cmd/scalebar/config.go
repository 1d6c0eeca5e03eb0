// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/aclements/go-scalebar/scalebar"
)

// Config describes one scale bar rendering.
type Config struct {
	// XLim and YLim are the visible map extent in metres.
	XLim [2]float64 `toml:"xlim"`
	YLim [2]float64 `toml:"ylim"`

	AtX        [2]float64 `toml:"at-x"`
	AtY        [2]float64 `toml:"at-y"`
	MaxStripes int        `toml:"max-stripes"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Format is "svg" or "png". If empty, it is taken from the
	// output file extension, defaulting to svg.
	Format string `toml:"format"`
	Output string `toml:"output"`

	// Frame draws a border with labeled ticks around the map.
	Frame bool `toml:"frame"`
}

// NewConfig returns the default configuration: a 100 km square map.
func NewConfig() Config {
	opts := scalebar.DefaultOptions()
	return Config{
		XLim:       [2]float64{0, 100000},
		YLim:       [2]float64{0, 100000},
		AtX:        opts.AtX,
		AtY:        opts.AtY,
		MaxStripes: opts.MaxStripes,
		Width:      800,
		Height:     800,
		Output:     "-",
	}
}

// LoadConfig decodes the TOML file at path over c.
func (c *Config) LoadConfig(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return fmt.Errorf("loading config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// OutputFormat returns the resolved output format.
func (c Config) OutputFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	if strings.EqualFold(filepath.Ext(c.Output), ".png") {
		return "png"
	}
	return "svg"
}

// Options returns the scale bar placement options.
func (c Config) Options() *scalebar.Options {
	return &scalebar.Options{AtX: c.AtX, AtY: c.AtY, MaxStripes: c.MaxStripes}
}

// Validate returns every problem with c.
func (c Config) Validate() error {
	var err error
	for _, lim := range []struct {
		name string
		v    [2]float64
	}{{"xlim", c.XLim}, {"ylim", c.YLim}, {"at-x", c.AtX}, {"at-y", c.AtY}} {
		for _, v := range lim.v {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				err = multierror.Append(err, fmt.Errorf("%s must be finite, got %v", lim.name, lim.v))
				break
			}
		}
	}
	if c.MaxStripes <= 0 {
		err = multierror.Append(err, errors.New("max-stripes must be positive"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		err = multierror.Append(err, fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height))
	}
	switch f := c.OutputFormat(); f {
	case "svg", "png":
	default:
		err = multierror.Append(err, fmt.Errorf("unknown format %q", f))
	}
	if c.Output == "" {
		err = multierror.Append(err, errors.New("output must be a path or \"-\""))
	}
	return err
}
