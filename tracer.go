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
	"fmt"
	"iter"
)

// Tracer converts a grid of shades into horizontal and vertical strokes.
//
// Rows are scanned first, using the [Horizontal] policy, then columns,
// using the [Vertical] policy.  Within each pass the scan direction
// alternates after every line on which something was drawn, so that a
// plotter head moves left-to-right, then right-to-left, and so on.
//
// A Tracer holds no mutable state and is safe for concurrent use.
type Tracer struct {
	Horizontal Policy
	Vertical   Policy
}

// NewTracer returns a Tracer which uses the [Horizontal] and [Vertical]
// policies for the given thresholds.
func NewTracer(t Thresholds) (*Tracer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Tracer{
		Horizontal: Horizontal{T: t},
		Vertical:   Vertical{T: t},
	}, nil
}

// Segments returns all strokes for g: first the row pass, then the
// column pass.
func (t *Tracer) Segments(g Grid) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for s := range Pass(g, AxisX, t.Horizontal) {
			if !yield(s) {
				return
			}
		}
		for s := range Pass(g, AxisY, t.Vertical) {
			if !yield(s) {
				return
			}
		}
	}
}

// Trace sends all strokes for g to the sink, in order.
// Tracing stops at the first error returned by the sink.
func (t *Tracer) Trace(g Grid, sink Sink) (*Stats, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGrid
	}

	stats := &Stats{}
	lastLine := [2]int{-1, -1}
	for s := range t.Segments(g) {
		if err := sink.AddSegment(s); err != nil {
			return stats, fmt.Errorf("%s pass, line %d: %w", s.Axis, s.Line, err)
		}
		stats.Segments[s.Axis]++
		stats.Ink[s.Axis] += s.Len()
		if lastLine[s.Axis] != s.Line {
			stats.Lines[s.Axis]++
			lastLine[s.Axis] = s.Line
		}
	}
	return stats, nil
}

// Stats summarises the output of [Tracer.Trace].
// The arrays are indexed by [Axis].
type Stats struct {
	Segments [2]int // number of strokes
	Lines    [2]int // number of scan lines with at least one stroke
	Ink      [2]int // total stroke length in pixels
}

// Pass scans all lines of g along the given axis and returns the strokes
// selected by the policy.
//
// On every line, maximal runs of equal shade are found.  When the shade
// changes between positions k-1 and k, the run ending at k is drawn if the
// policy accepts the shade at k-1.  The last run of a line is decided by
// the shade at the last position.  After a line with at least one stroke
// the scan direction is reversed for the next line.
func Pass(g Grid, axis Axis, p Policy) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if g.IsEmpty() {
			return
		}

		n := g.lineLen(axis)
		var buf []uint8
		invert := false
		for i := range g.numLines(axis) {
			buf = g.readLine(buf, axis, i, invert)

			drawn := false
			runStart := 0
			for k := 1; k < n; k++ {
				if buf[k] == buf[k-1] {
					continue
				}
				if p.Draw(buf[k-1], i) {
					s := Segment{Axis: axis, Line: i, Start: runStart, Stop: k, Inverted: invert, Extent: n}
					if !yield(s) {
						return
					}
					drawn = true
				}
				runStart = k
			}
			if p.Draw(buf[n-1], i) {
				s := Segment{Axis: axis, Line: i, Start: runStart, Stop: n, Inverted: invert, Extent: n}
				if !yield(s) {
					return
				}
				drawn = true
			}

			if drawn {
				invert = !invert
			}
		}
	}
}
