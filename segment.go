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

	"seehuhn.de/go/geom/vec"
)

// Axis identifies the orientation of a scan pass.
type Axis int

const (
	// AxisX scans the rows of the image; strokes are horizontal.
	AxisX Axis = iota

	// AxisY scans the columns of the image; strokes are vertical.
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Labels returns the coordinate names along and across the scan lines,
// i.e. "x", "y" for AxisX and "y", "x" for AxisY.
func (a Axis) Labels() (along, across string) {
	if a == AxisY {
		return "y", "x"
	}
	return "x", "y"
}

// Segment is a single stroke found by the tracer.
//
// Start and Stop are positions along the scan line, with Start < Stop.
// If Inverted is set, the line was scanned in reverse direction and the
// positions count from the far end; use [Segment.Coords] to obtain image
// coordinates.
type Segment struct {
	Axis     Axis
	Line     int // row index for AxisX, column index for AxisY
	Start    int
	Stop     int
	Inverted bool
	Extent   int // length of the scan line, used for mirroring
}

// Coords returns the pen-down and pen-up positions along the scan line,
// in image coordinates.  For inverted segments the pen moves towards
// smaller coordinates.
func (s Segment) Coords() (from, to int) {
	if s.Inverted {
		return s.Extent - s.Start, s.Extent - s.Stop
	}
	return s.Start, s.Stop
}

// Points returns the two endpoints of the stroke in image space.
func (s Segment) Points() (from, to vec.Vec2) {
	a, b := s.Coords()
	line := float64(s.Line)
	if s.Axis == AxisY {
		return vec.Vec2{X: line, Y: float64(a)}, vec.Vec2{X: line, Y: float64(b)}
	}
	return vec.Vec2{X: float64(a), Y: line}, vec.Vec2{X: float64(b), Y: line}
}

// Len returns the length of the stroke.
func (s Segment) Len() int {
	return s.Stop - s.Start
}

// Sink consumes segments in emission order.
type Sink interface {
	AddSegment(s Segment) error
}

// SinkFunc adapts an ordinary function to the [Sink] interface.
type SinkFunc func(s Segment) error

// AddSegment calls f(s).
func (f SinkFunc) AddSegment(s Segment) error {
	return f(s)
}

// MultiSink returns a sink which forwards every segment to all of the
// given sinks, in order.  It stops at the first error.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(s Segment) error {
		for _, sink := range sinks {
			if err := sink.AddSegment(s); err != nil {
				return err
			}
		}
		return nil
	})
}
