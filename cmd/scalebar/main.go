// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scalebar renders a striped kilometre scale bar for a map
// whose axes are in metres, such as an Ordnance Survey National Grid
// (OSGB) plot.
//
// The bar is placed in a box given as fractions of the visible map
// extent, snapped to round-numbered ticks, and written as SVG or PNG.
// For example,
//
//	scalebar --xlim 400000,700000 --ylim 100000,400000 -o bar.png
//
// Settings may also be read from a TOML file with --config; flags
// given on the command line override the file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-scalebar/internal/raster"
	"github.com/aclements/go-scalebar/internal/svg"
	"github.com/aclements/go-scalebar/scalebar"
	"github.com/aclements/go-scalebar/stopwatch"
)

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(stdout io.Writer) *cobra.Command {
	var (
		flagConfig  string
		flagVerbose bool

		xlim, ylim, atX, atY []float64
	)
	cfg := NewConfig()
	flagCfg := cfg

	cmd := &cobra.Command{
		Use:           "scalebar",
		Short:         "Render a kilometre scale bar for a metric map",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig != "" {
				if err := cfg.LoadConfig(flagConfig); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			for _, p := range []struct {
				name string
				v    []float64
				dst  *[2]float64
			}{
				{"xlim", xlim, &cfg.XLim},
				{"ylim", ylim, &cfg.YLim},
				{"at-x", atX, &cfg.AtX},
				{"at-y", atY, &cfg.AtY},
			} {
				if !flags.Changed(p.name) {
					continue
				}
				if len(p.v) != 2 {
					return fmt.Errorf("--%s takes two values, got %d", p.name, len(p.v))
				}
				*p.dst = [2]float64{p.v[0], p.v[1]}
			}
			if flags.Changed("stripes") {
				cfg.MaxStripes = flagCfg.MaxStripes
			}
			if flags.Changed("width") {
				cfg.Width = flagCfg.Width
			}
			if flags.Changed("height") {
				cfg.Height = flagCfg.Height
			}
			if flags.Changed("format") {
				cfg.Format = flagCfg.Format
			}
			if flags.Changed("output") {
				cfg.Output = flagCfg.Output
			}
			if flags.Changed("frame") {
				cfg.Frame = flagCfg.Frame
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log, err := newLogger(flagVerbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			return run(cfg, log, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "read settings from TOML `file`")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log debugging output")
	flags.Float64SliceVar(&xlim, "xlim", cfg.XLim[:], "visible map `x0,x1` in metres")
	flags.Float64SliceVar(&ylim, "ylim", cfg.YLim[:], "visible map `y0,y1` in metres")
	flags.Float64SliceVar(&atX, "at-x", cfg.AtX[:], "bar left,right as fractions of the x range")
	flags.Float64SliceVar(&atY, "at-y", cfg.AtY[:], "bar bottom,top as fractions of the y range")
	flags.IntVar(&flagCfg.MaxStripes, "stripes", cfg.MaxStripes, "maximum number of stripes")
	flags.IntVar(&flagCfg.Width, "width", cfg.Width, "image width in pixels")
	flags.IntVar(&flagCfg.Height, "height", cfg.Height, "image height in pixels")
	flags.StringVar(&flagCfg.Format, "format", cfg.Format, "output `format`: svg or png (default from output name)")
	flags.StringVarP(&flagCfg.Output, "output", "o", cfg.Output, "write image to `file` (- for stdout)")
	flags.BoolVar(&flagCfg.Frame, "frame", cfg.Frame, "draw a border with labeled ticks")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run renders cfg and writes the image to cfg.Output or stdout.
func run(cfg Config, log *zap.Logger, stdout io.Writer) (err error) {
	sw := stopwatch.Start()

	w := stdout
	if cfg.Output != "-" {
		f, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	bar := scalebar.NewBar(cfg.XLim[0], cfg.XLim[1], cfg.YLim[0], cfg.YLim[1], cfg.Options())
	log.Debug("Computed scale bar",
		zap.Float64s("ticks", bar.Ticks),
		zap.Strings("labels", bar.Labels()),
		zap.Float64("y0", bar.Y0),
		zap.Float64("y1", bar.Y1))
	if bar.Stripes() == 0 {
		log.Warn("Scale bar has no stripes", zap.Float64s("xlim", cfg.XLim[:]))
	}

	draw := func(s scalebar.Surface) {
		if cfg.Frame {
			defaultFrame.Draw(s)
		}
		bar.Draw(s)
	}

	switch cfg.OutputFormat() {
	case "png":
		c, err := raster.NewCanvas(cfg.XLim[0], cfg.XLim[1], cfg.YLim[0], cfg.YLim[1], cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		draw(c)
		if err := c.Err(); err != nil {
			return err
		}
		log.Debug("Rasterized scale bar", zap.Stringer("bounds", c.Image().Bounds()))
		if err := c.WritePNG(w); err != nil {
			return fmt.Errorf("writing PNG: %w", err)
		}
	default:
		c := svg.NewCanvas(w, cfg.XLim[0], cfg.XLim[1], cfg.YLim[0], cfg.YLim[1], cfg.Width, cfg.Height)
		draw(c)
		if err := c.Done(); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
	}

	log.Info("Rendered scale bar",
		zap.String("output", cfg.Output),
		zap.String("format", cfg.OutputFormat()),
		zap.Int("stripes", bar.Stripes()),
		zap.Stringer("elapsed", sw))
	return nil
}
