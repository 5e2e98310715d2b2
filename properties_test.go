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

package lineart_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/testcases"
)

func forAllCases(t *testing.T, fn func(t *testing.T, g lineart.Grid)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fn(t, tc.Grid())
			})
		}
	}
}

var policies = map[lineart.Axis]lineart.Policy{
	lineart.AxisX: lineart.Horizontal{T: lineart.DefaultThresholds},
	lineart.AxisY: lineart.Vertical{T: lineart.DefaultThresholds},
}

// TestLinePartition checks that the strokes on every line are ordered,
// do not overlap and stay within the line.
func TestLinePartition(t *testing.T) {
	forAllCases(t, func(t *testing.T, g lineart.Grid) {
		for axis, p := range policies {
			prevLine, prevStop := -1, 0
			for s := range lineart.Pass(g, axis, p) {
				if s.Start >= s.Stop || s.Start < 0 || s.Stop > s.Extent {
					t.Errorf("%s: invalid stroke %+v", axis, s)
				}
				if s.Line < prevLine {
					t.Errorf("%s: line %d after line %d", axis, s.Line, prevLine)
				}
				if s.Line == prevLine && s.Start < prevStop {
					t.Errorf("%s: overlapping strokes on line %d", axis, s.Line)
				}
				prevLine, prevStop = s.Line, s.Stop
			}
		}
	})
}

// TestRunsCovered checks that every drawn run has a single shade,
// accepted by the policy, and that the runs touching a stroke have a
// different shade.
func TestRunsCovered(t *testing.T) {
	forAllCases(t, func(t *testing.T, g lineart.Grid) {
		for axis, p := range policies {
			for s := range lineart.Pass(g, axis, p) {
				line := scanLine(g, axis, s.Line, s.Inverted)
				v := line[s.Start]
				for _, w := range line[s.Start:s.Stop] {
					if w != v {
						t.Fatalf("%s: stroke %+v spans several shades", axis, s)
					}
				}
				if !p.Draw(v, s.Line) {
					t.Errorf("%s: stroke %+v has shade %d, rejected by policy", axis, s, v)
				}
				if s.Start > 0 && line[s.Start-1] == v {
					t.Errorf("%s: stroke %+v does not start a run", axis, s)
				}
				if s.Stop < len(line) && line[s.Stop] == v {
					t.Errorf("%s: stroke %+v does not end a run", axis, s)
				}
			}
		}
	})
}

// TestAlternation checks that the scan direction changes exactly after
// the lines with strokes.
func TestAlternation(t *testing.T) {
	forAllCases(t, func(t *testing.T, g lineart.Grid) {
		for axis, p := range policies {
			inverted := false
			prevLine := -1
			for s := range lineart.Pass(g, axis, p) {
				if s.Line != prevLine {
					if prevLine >= 0 {
						inverted = !inverted
					}
					prevLine = s.Line
				}
				if s.Inverted != inverted {
					t.Errorf("%s line %d: inverted=%t, want %t", axis, s.Line, s.Inverted, inverted)
				}
			}
		}
	})
}

// TestTransposeSymmetry checks that the column pass over a grid gives the
// same strokes as the row pass over the transposed grid.
func TestTransposeSymmetry(t *testing.T) {
	forAllCases(t, func(t *testing.T, g lineart.Grid) {
		for _, p := range policies {
			cols := slices.Collect(lineart.Pass(g, lineart.AxisY, p))
			rows := slices.Collect(lineart.Pass(g.Transpose(), lineart.AxisX, p))
			for i := range rows {
				rows[i].Axis = lineart.AxisY
			}
			if d := cmp.Diff(rows, cols); d != "" {
				t.Errorf("(-rows +cols)\n%s", d)
			}
		}
	})
}

// TestPassesIndependent checks that the column pass starts with its own
// direction state and that tracing does not modify the grid.
func TestPassesIndependent(t *testing.T) {
	tracer, err := lineart.NewTracer(lineart.DefaultThresholds)
	if err != nil {
		t.Fatal(err)
	}
	forAllCases(t, func(t *testing.T, g lineart.Grid) {
		before := g.Transpose().Transpose()

		var want []lineart.Segment
		for axis := range 2 {
			a := lineart.Axis(axis)
			want = append(want, slices.Collect(lineart.Pass(g, a, policies[a]))...)
		}
		got := slices.Collect(tracer.Segments(g))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("(-want +got)\n%s", d)
		}
		if !g.Equal(before) {
			t.Error("tracing modified the grid")
		}
	})
}

func scanLine(g lineart.Grid, axis lineart.Axis, i int, reverse bool) []uint8 {
	var res []uint8
	if axis == lineart.AxisX {
		for x := range g.Width() {
			res = append(res, g.At(x, i))
		}
	} else {
		for y := range g.Height() {
			res = append(res, g.At(i, y))
		}
	}
	if reverse {
		slices.Reverse(res)
	}
	return res
}
