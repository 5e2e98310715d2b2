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

// Package svg writes line art as an SVG 1.1 document.
package svg

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/lineart"
)

// Options controls the appearance of the SVG output.
type Options struct {
	// Invisible omits the stroke style.  Most viewers then show an empty
	// page, but G-code generators which trace the outline of every stroke
	// draw each line only once.
	Invisible bool

	// StrokeWidth is the width of visible strokes.  Zero means 1.
	StrokeWidth float64
}

// Writer writes segments as SVG <line> elements.
// The first write error is kept and returned by all later calls.
type Writer struct {
	w       *bufio.Writer
	visible bool
	closed  bool
	err     error
}

var _ lineart.Sink = (*Writer)(nil)

// NewWriter writes the SVG header for a canvas of the given size and
// returns a Writer for the document body.  The caller must call
// [Writer.Close] to complete the document.
func NewWriter(w io.Writer, width, height int, opt *Options) (*Writer, error) {
	if opt == nil {
		opt = &Options{}
	}
	strokeWidth := opt.StrokeWidth
	if strokeWidth == 0 {
		strokeWidth = 1
	}

	sw := &Writer{
		w:       bufio.NewWriter(w),
		visible: !opt.Invisible,
	}
	sw.printf("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	sw.printf("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	sw.printf("<svg width=\"%dpt\" height=\"%dpt\" viewBox=\"0 0 %d %d\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		width, height, width, height)
	if sw.visible {
		sw.printf("<g stroke=\"black\" stroke-width=\"%g\">\n", strokeWidth)
	}
	if sw.err != nil {
		return nil, sw.err
	}
	return sw, nil
}

// AddSegment writes a single <line> element.
// Along the scan line the mirrored coordinates are used, so that inverted
// segments are drawn from right to left (or bottom to top).
func (sw *Writer) AddSegment(s lineart.Segment) error {
	if sw.closed {
		return errClosed
	}
	along, across := s.Axis.Labels()
	from, to := s.Coords()
	sw.printf("<line %s1=\"%d\" %s1=\"%d\" %s2=\"%d\" %s2=\"%d\"/>\n",
		along, from, across, s.Line, along, to, across, s.Line)
	return sw.err
}

// Close completes the document and flushes all buffered output.
// It does not close the underlying writer.
func (sw *Writer) Close() error {
	if sw.closed {
		return errClosed
	}
	sw.closed = true
	if sw.visible {
		sw.printf("</g>\n")
	}
	sw.printf("</svg>\n")
	if sw.err != nil {
		return sw.err
	}
	return sw.w.Flush()
}

func (sw *Writer) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

var errClosed = errors.New("svg: writer already closed")
