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

// Package pdfout writes line art as a single-page PDF file.
//
// One pixel of the input image corresponds to one PDF point.
package pdfout

import (
	"errors"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lineart"
)

// Options controls the appearance of the PDF output.
type Options struct {
	// LineWidth is the stroke width in PDF points.  Zero means 1.
	LineWidth float64

	// Invisible constructs the stroke paths without painting them.
	Invisible bool
}

// Writer draws segments onto a PDF page.
type Writer struct {
	page      *document.Page
	invisible bool
}

var _ lineart.Sink = (*Writer)(nil)

// New starts a PDF document of the given size, written to w.
// The caller must call [Writer.Close] to complete the document.
func New(w io.Writer, width, height int, opt *Options) (*Writer, error) {
	page, err := document.WriteSinglePage(w, pageSize(width, height), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return setup(page, height, opt), nil
}

// Create starts a PDF document of the given size, written to the named file.
// The caller must call [Writer.Close] to complete the document.
func Create(fileName string, width, height int, opt *Options) (*Writer, error) {
	page, err := document.CreateSinglePage(fileName, pageSize(width, height), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return setup(page, height, opt), nil
}

func pageSize(width, height int) *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
}

func setup(page *document.Page, height int, opt *Options) *Writer {
	if opt == nil {
		opt = &Options{}
	}
	lineWidth := opt.LineWidth
	if lineWidth == 0 {
		lineWidth = 1
	}

	// PDF origin is bottom-left; image coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lineWidth)
	page.SetLineCap(graphics.LineCapButt)

	return &Writer{
		page:      page,
		invisible: opt.Invisible,
	}
}

// AddSegment draws a single stroke.
func (w *Writer) AddSegment(s lineart.Segment) error {
	if w.page.Builder == nil {
		return errClosed
	}
	from, to := s.Points()
	w.page.MoveTo(from.X, from.Y)
	w.page.LineTo(to.X, to.Y)
	if w.invisible {
		w.page.EndPath()
	} else {
		w.page.Stroke()
	}
	return w.page.Err
}

// Close writes the page and completes the PDF file.
func (w *Writer) Close() error {
	if w.page.Builder == nil {
		return errClosed
	}
	return w.page.Close()
}

var errClosed = errors.New("pdfout: writer already closed")
