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

// Package testcases contains shade grids used for testing the tracer.
package testcases

import (
	"seehuhn.de/go/lineart"
)

// TestCase defines a single tracing test.
type TestCase struct {
	Name string    // lowercase a-z, 0-9 and _ only
	Rows [][]uint8 // shade values, one slice per image row
}

// Grid returns the test case as a [lineart.Grid].
// It panics if the rows are not rectangular.
func (tc TestCase) Grid() lineart.Grid {
	g, err := lineart.GridFromRows(tc.Rows)
	if err != nil {
		panic(tc.Name + ": " + err.Error())
	}
	return g
}

// The six shades for [lineart.DefaultThresholds], darkest first.
const (
	B1 uint8 = 0
	B2 uint8 = 50
	B3 uint8 = 100
	B4 uint8 = 158
	B5 uint8 = 212
	B6 uint8 = lineart.NoInk
)

// Shades lists the six shades for [lineart.DefaultThresholds].
var Shades = []uint8{B1, B2, B3, B4, B5, B6}

// uniform builds a w×h grid filled with a single shade.
func uniform(w, h int, v uint8) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		row := make([]uint8, w)
		for x := range row {
			row[x] = v
		}
		rows[y] = row
	}
	return rows
}

// repeatRow builds a grid with h copies of row.
func repeatRow(h int, row ...uint8) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = append([]uint8(nil), row...)
	}
	return rows
}
