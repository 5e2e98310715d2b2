// seehuhn.de/go/lineart - convert images into plotter line art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/gcode"
	"seehuhn.de/go/lineart/loader"
	"seehuhn.de/go/lineart/pdfout"
	"seehuhn.de/go/lineart/preview"
	"seehuhn.de/go/lineart/svg"
)

func runConvert(cmd *cobra.Command, opts *options, inputFile string) error {
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	cfg, err := opts.config(cmd)
	if err != nil {
		return err
	}
	format, err := opts.outputFormat()
	if err != nil {
		return err
	}

	img, err := loader.Load(inputFile)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		img = loader.Resize(img, opts.width)
	}
	b := img.Bounds()
	logger.Info("image loaded", "file", inputFile, "width", b.Dx(), "height", b.Dy())

	q, err := lineart.NewQuantizer(cfg.Thresholds)
	if err != nil {
		return err
	}
	grid, err := q.Grid(img)
	if err != nil {
		return err
	}
	tracer, err := lineart.NewTracer(cfg.Thresholds)
	if err != nil {
		return err
	}

	out, err := openOutput(format, opts.output, grid.Width(), grid.Height(), cfg, opts)
	if err != nil {
		return err
	}
	var sink lineart.Sink = out
	var pv *pngOutput
	if opts.preview != "" {
		pv = newPNGOutput(opts.preview, grid.Width(), grid.Height(), opts.lineWidth)
		sink = lineart.MultiSink(out, pv)
	}

	stats, err := tracer.Trace(grid, sink)
	if err != nil {
		out.Close()
		return err
	}
	err = out.Close()
	if pv != nil {
		err = errors.Join(err, pv.Close())
	}
	if err != nil {
		return err
	}
	logger.Info("output written", "file", opts.output, "format", format)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %dx%d pixels -> %s (%s)\n",
		inputFile, grid.Width(), grid.Height(), opts.output, format)
	for _, axis := range []lineart.Axis{lineart.AxisX, lineart.AxisY} {
		fmt.Fprintf(w, "  %s pass: %d strokes on %d lines, %d pixels of ink\n",
			axis, stats.Segments[axis], stats.Lines[axis], stats.Ink[axis])
	}
	if g, ok := out.(*gcodeOutput); ok {
		bbox := g.Bounds()
		fmt.Fprintf(w, "  plot area: %.1fx%.1f mm, pen-up travel: %.1f mm\n",
			bbox.URx-bbox.LLx, bbox.URy-bbox.LLy, g.Travel())
	}
	return nil
}

// output is a segment sink backed by a file.
type output interface {
	lineart.Sink
	io.Closer
}

func openOutput(format, fileName string, width, height int, cfg *lineart.Config, opts *options) (output, error) {
	switch format {
	case "pdf":
		w, err := pdfout.Create(fileName, width, height, &pdfout.Options{
			LineWidth: opts.lineWidth,
			Invisible: !cfg.Visible,
		})
		if err != nil {
			return nil, err
		}
		return w, nil
	case "png":
		return newPNGOutput(fileName, width, height, opts.lineWidth), nil
	}

	fd, err := os.Create(fileName)
	if err != nil {
		return nil, err
	}
	switch format {
	case "gcode":
		w, err := gcode.NewWriter(fd, width, height, &gcode.Options{
			Scale: opts.scale,
			Feed:  opts.feed,
		})
		if err != nil {
			fd.Close()
			return nil, err
		}
		return &gcodeOutput{Writer: w, fd: fd}, nil
	default:
		w, err := svg.NewWriter(fd, width, height, &svg.Options{
			Invisible:   !cfg.Visible,
			StrokeWidth: opts.lineWidth,
		})
		if err != nil {
			fd.Close()
			return nil, err
		}
		return &svgOutput{Writer: w, fd: fd}, nil
	}
}

type svgOutput struct {
	*svg.Writer
	fd *os.File
}

func (o *svgOutput) Close() error {
	return errors.Join(o.Writer.Close(), o.fd.Close())
}

type gcodeOutput struct {
	*gcode.Writer
	fd *os.File
}

func (o *gcodeOutput) Close() error {
	return errors.Join(o.Writer.Close(), o.fd.Close())
}

// pngOutput renders the segments and writes a PNG image on Close.
type pngOutput struct {
	*preview.Canvas
	fileName string
}

func newPNGOutput(fileName string, width, height int, lineWidth float64) *pngOutput {
	c := preview.New(width, height)
	if lineWidth > 0 {
		c.LineWidth = lineWidth
	}
	return &pngOutput{Canvas: c, fileName: fileName}
}

func (o *pngOutput) Close() error {
	fd, err := os.Create(o.fileName)
	if err != nil {
		return err
	}
	err = o.WritePNG(fd)
	return errors.Join(err, fd.Close())
}
