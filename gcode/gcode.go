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

// Package gcode writes line art as G-code for XY plotters.
//
// The image is mapped onto the first quadrant of the machine coordinate
// system, with the top-left image corner at (0, height*Scale).
package gcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart"
)

// Options controls the generated G-code.
type Options struct {
	// Scale is the size of one image pixel in millimetres.
	// Zero means 0.1.
	Scale float64

	// Feed is the drawing speed in millimetres per minute.
	// Zero means 1500.
	Feed float64

	// PenUp and PenDown are the commands which lift and lower the pen.
	// Empty strings mean "M5" and "M3".
	PenUp, PenDown string
}

// Writer writes segments as G-code moves.
// The first write error is kept and returned by all later calls.
type Writer struct {
	w       *bufio.Writer
	m       matrix.Matrix
	feed    float64
	penUp   string
	penDown string

	pos    vec.Vec2 // current head position, in mm
	travel float64  // pen-up travel, in mm
	bbox   rect.Rect
	inked  bool
	closed bool
	err    error
}

var _ lineart.Sink = (*Writer)(nil)

// NewWriter writes the program header for an image of the given size.
// The caller must call [Writer.Close] to complete the program.
func NewWriter(w io.Writer, width, height int, opt *Options) (*Writer, error) {
	if opt == nil {
		opt = &Options{}
	}
	scale := opt.Scale
	if scale == 0 {
		scale = 0.1
	}
	if scale < 0 || opt.Feed < 0 {
		return nil, errors.New("gcode: negative scale or feed rate")
	}
	gw := &Writer{
		w: bufio.NewWriter(w),
		// flip the y axis, so that the plot is not mirrored
		m:       matrix.Matrix{scale, 0, 0, -scale, 0, float64(height) * scale},
		feed:    opt.Feed,
		penUp:   opt.PenUp,
		penDown: opt.PenDown,
	}
	if gw.feed == 0 {
		gw.feed = 1500
	}
	if gw.penUp == "" {
		gw.penUp = "M5"
	}
	if gw.penDown == "" {
		gw.penDown = "M3"
	}

	gw.printf("; line art, %dx%d pixels, %.3fx%.3f mm\n",
		width, height, float64(width)*scale, float64(height)*scale)
	gw.printf("G21\n") // millimetres
	gw.printf("G90\n") // absolute coordinates
	gw.printf("%s\n", gw.penUp)
	if gw.err != nil {
		return nil, gw.err
	}
	return gw, nil
}

// AddSegment moves to the start of the segment with the pen lifted, then
// draws the segment.
func (gw *Writer) AddSegment(s lineart.Segment) error {
	if gw.closed {
		return errClosed
	}
	from, to := s.Points()
	from = gw.m.Apply(from)
	to = gw.m.Apply(to)

	if from != gw.pos {
		gw.travel += from.Sub(gw.pos).Length()
		gw.printf("G0 X%.3f Y%.3f\n", from.X, from.Y)
	}
	gw.printf("%s\n", gw.penDown)
	gw.printf("G1 X%.3f Y%.3f F%g\n", to.X, to.Y, gw.feed)
	gw.printf("%s\n", gw.penUp)
	gw.pos = to
	gw.extend(from)
	gw.extend(to)
	return gw.err
}

func (gw *Writer) extend(p vec.Vec2) {
	if !gw.inked {
		gw.bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		gw.inked = true
		return
	}
	gw.bbox.LLx = min(gw.bbox.LLx, p.X)
	gw.bbox.LLy = min(gw.bbox.LLy, p.Y)
	gw.bbox.URx = max(gw.bbox.URx, p.X)
	gw.bbox.URy = max(gw.bbox.URy, p.Y)
}

// Bounds returns the area covered by the pen-down moves so far, in
// machine coordinates.  The result is the zero rectangle if nothing has
// been drawn.
func (gw *Writer) Bounds() rect.Rect {
	return gw.bbox
}

// Travel returns the distance, in millimetres, which the head has moved
// with the pen lifted so far.
func (gw *Writer) Travel() float64 {
	return gw.travel
}

// Close returns the head to the origin, ends the program and flushes all
// buffered output.  It does not close the underlying writer.
func (gw *Writer) Close() error {
	if gw.closed {
		return errClosed
	}
	gw.closed = true
	gw.travel += gw.pos.Length()
	gw.printf("G0 X0 Y0\n")
	gw.printf("M2\n")
	if gw.err != nil {
		return gw.err
	}
	return gw.w.Flush()
}

func (gw *Writer) printf(format string, args ...any) {
	if gw.err != nil {
		return
	}
	_, gw.err = fmt.Fprintf(gw.w, format, args...)
}

var errClosed = errors.New("gcode: writer already closed")
