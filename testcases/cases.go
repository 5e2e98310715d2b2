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

package testcases

var uniformCases = []TestCase{
	{Name: "black_16", Rows: uniform(16, 16, B1)},
	{Name: "shade2_16", Rows: uniform(16, 16, B2)},
	{Name: "shade3_16", Rows: uniform(16, 16, B3)},
	{Name: "shade4_16", Rows: uniform(16, 16, B4)},
	{Name: "shade5_16", Rows: uniform(16, 16, B5)},
	{Name: "white_16", Rows: uniform(16, 16, B6)},
	{Name: "black_wide", Rows: uniform(40, 9, B1)},
	{Name: "shade2_tall", Rows: uniform(9, 40, B2)},
}

var patternCases = []TestCase{
	{
		Name: "half_black",
		Rows: repeatRow(8, B1, B1, B6, B6),
	},
	{
		Name: "palette",
		Rows: repeatRow(17, B1, B2, B3, B4, B5, B6),
	},
	{
		Name: "palette_reversed",
		Rows: repeatRow(17, B6, B5, B4, B3, B2, B1),
	},
	{
		Name: "stripes",
		Rows: repeatRow(9, B1, B1, B6, B2, B2, B6, B4, B4, B6, B1),
	},
	{
		Name: "checkerboard",
		Rows: checkerboard(12, 12, 3, B1, B6),
	},
	{
		Name: "gradient",
		Rows: gradient(24, 24),
	},
}

var edgeCases = []TestCase{
	{Name: "single_pixel_black", Rows: [][]uint8{{B1}}},
	{Name: "single_pixel_white", Rows: [][]uint8{{B6}}},
	{Name: "single_row", Rows: [][]uint8{{B1, B6, B1, B1, B6, B6, B1}}},
	{Name: "single_column", Rows: [][]uint8{{B1}, {B2}, {B2}, {B6}, {B3}}},
	{Name: "white_gap", Rows: append(uniform(8, 3, B6), uniform(8, 3, B1)...)},
}

// checkerboard builds a w×h grid of size×size squares in two shades.
func checkerboard(w, h, size int, a, b uint8) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		row := make([]uint8, w)
		for x := range row {
			if (x/size+y/size)%2 == 0 {
				row[x] = a
			} else {
				row[x] = b
			}
		}
		rows[y] = row
	}
	return rows
}

// gradient builds a w×h grid which goes from the darkest shade in the top
// left corner to the lightest shade in the bottom right corner.
func gradient(w, h int) [][]uint8 {
	rows := make([][]uint8, h)
	for y := range rows {
		row := make([]uint8, w)
		for x := range row {
			k := (x + y) * len(Shades) / (w + h - 1)
			row[x] = Shades[k]
		}
		rows[y] = row
	}
	return rows
}
