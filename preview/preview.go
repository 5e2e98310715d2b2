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

// Package preview renders line art into a raster image, to check the
// result of a conversion without a plotter.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart"
)

// Canvas collects stroke outlines for rendering.
// Strokes have butt caps.  A stroke on image row y covers the pixel row
// from y to y+1, so that strokes of width 1 align with the pixel grid.
type Canvas struct {
	// LineWidth is the stroke width in pixels.
	LineWidth float64

	width, height int
	outlines      *path.Data
}

var _ lineart.Sink = (*Canvas)(nil)

// New returns an empty canvas of the given size, with line width 1.
func New(width, height int) *Canvas {
	return &Canvas{
		LineWidth: 1,
		width:     width,
		height:    height,
		outlines:  &path.Data{},
	}
}

// AddSegment adds the outline of a stroke to the canvas.
func (c *Canvas) AddSegment(s lineart.Segment) error {
	from, to := s.Points()
	lo := vec.Vec2{X: min(from.X, to.X), Y: min(from.Y, to.Y)}
	hi := vec.Vec2{X: max(from.X, to.X), Y: max(from.Y, to.Y)}

	// widen across the scan line, centred on the middle of the pixel
	d := (1 - c.LineWidth) / 2
	if s.Axis == lineart.AxisY {
		lo.X += d
		hi.X += 1 - d
	} else {
		lo.Y += d
		hi.Y += 1 - d
	}

	c.outlines.
		MoveTo(lo).
		LineTo(vec.Vec2{X: hi.X, Y: lo.Y}).
		LineTo(hi).
		LineTo(vec.Vec2{X: lo.X, Y: hi.Y}).
		Close()
	return nil
}

// Mask rasterises all strokes added so far.  Each pixel holds the stroke
// coverage, from 0 (no ink) to 255 (fully inked).
func (c *Canvas) Mask() *image.Alpha {
	r := vector.NewRasterizer(c.width, c.height)

	coordIdx := 0
	for _, cmd := range c.outlines.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := c.outlines.Coords[coordIdx]
			r.MoveTo(float32(p.X), float32(p.Y))
			coordIdx++
		case path.CmdLineTo:
			p := c.outlines.Coords[coordIdx]
			r.LineTo(float32(p.X), float32(p.Y))
			coordIdx++
		case path.CmdClose:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

// Image renders the strokes in black onto a white background.
func (c *Canvas) Image() *image.Gray {
	mask := c.Mask()
	img := image.NewGray(mask.Bounds())
	for i, a := range mask.Pix {
		img.Pix[i] = 255 - a
	}
	return img
}

// WritePNG encodes the rendered image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
