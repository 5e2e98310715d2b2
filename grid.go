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

package lineart

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyGrid is returned for grids with no rows or no columns.
	ErrEmptyGrid = errors.New("empty grid")

	// ErrShape is returned when grid data is not rectangular.
	ErrShape = errors.New("grid is not rectangular")
)

// Grid is a rectangular array of shade values, stored in row-major order.
// A Grid is immutable once constructed; the zero value is an empty grid.
type Grid struct {
	width, height int
	pix           []uint8
}

// NewGrid returns a grid of the given size.
// The pixel data is copied; len(pix) must equal width*height.
func NewGrid(width, height int, pix []uint8) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	if len(pix) != width*height {
		return Grid{}, fmt.Errorf("%d values for %dx%d grid: %w",
			len(pix), width, height, ErrShape)
	}
	return Grid{width: width, height: height, pix: slices.Clone(pix)}, nil
}

// GridFromRows builds a grid from a slice of rows.
// All rows must have the same, non-zero length.
func GridFromRows(rows [][]uint8) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	w := len(rows[0])
	pix := make([]uint8, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("row %d has length %d, expected %d: %w",
				y, len(row), w, ErrShape)
		}
		pix = append(pix, row...)
	}
	return Grid{width: w, height: len(rows), pix: pix}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// IsEmpty reports whether the grid has no cells.
func (g Grid) IsEmpty() bool {
	return g.width <= 0 || g.height <= 0
}

// At returns the shade at column x, row y.
func (g Grid) At(x, y int) uint8 {
	return g.pix[y*g.width+x]
}

// Transpose returns a new grid with rows and columns swapped.
func (g Grid) Transpose() Grid {
	pix := make([]uint8, len(g.pix))
	for y := range g.height {
		for x := range g.width {
			pix[x*g.height+y] = g.pix[y*g.width+x]
		}
	}
	return Grid{width: g.height, height: g.width, pix: pix}
}

// Equal reports whether two grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	return g.width == other.width && g.height == other.height &&
		slices.Equal(g.pix, other.pix)
}

// numLines returns the number of scan lines along the given axis.
func (g Grid) numLines(axis Axis) int {
	if axis == AxisY {
		return g.width
	}
	return g.height
}

// lineLen returns the length of a scan line along the given axis.
func (g Grid) lineLen(axis Axis) int {
	if axis == AxisY {
		return g.height
	}
	return g.width
}

// readLine copies scan line i along the axis into buf, reversing the
// order of the values if reverse is set.  The AxisY lines are the
// columns of g, so no transposed copy of the grid is needed.
func (g Grid) readLine(buf []uint8, axis Axis, i int, reverse bool) []uint8 {
	n := g.lineLen(axis)
	buf = slices.Grow(buf[:0], n)[:n]
	if axis == AxisY {
		for k := range n {
			buf[k] = g.pix[k*g.width+i]
		}
	} else {
		copy(buf, g.pix[i*g.width:(i+1)*g.width])
	}
	if reverse {
		slices.Reverse(buf)
	}
	return buf
}
