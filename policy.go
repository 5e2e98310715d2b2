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

// Policy decides whether a run of the given shade on the given scan line
// is drawn.
//
// Scan lines are grouped into tiers by their index: every second line,
// every fourth line and every eighth line.  Darker shades are drawn on the
// denser tiers, lighter shades only on the sparse ones.
type Policy interface {
	Draw(bucket uint8, line int) bool
}

// PolicyFunc adapts an ordinary function to the [Policy] interface.
type PolicyFunc func(bucket uint8, line int) bool

// Draw calls f(bucket, line).
func (f PolicyFunc) Draw(bucket uint8, line int) bool {
	return f(bucket, line)
}

// Horizontal is the policy for the row pass.
//
// The tiers are tested in order and a tone which fails one tier falls
// through to the next:
//   - line%2 == 0: the darkest shade,
//   - line%4 == 0: the three darkest shades,
//   - line%8 == 0: every shade except [NoInk].
type Horizontal struct {
	T Thresholds
}

// Draw implements the [Policy] interface.
func (h Horizontal) Draw(v uint8, line int) bool {
	switch {
	case line%2 == 0 && v <= h.T[0]:
		return true
	case line%4 == 0 && v <= h.T[2]:
		return true
	case line%8 == 0 && v <= h.T[4]:
		return true
	default:
		return false
	}
}

// Vertical is the policy for the column pass.
//
// It adds cross-hatching on top of the horizontal lines.  Tones which
// [Horizontal] draws on a tier by themselves are excluded here: the darkest
// shade on the 2-tier, and the third shade on the 4-tier.
type Vertical struct {
	T Thresholds
}

// Draw implements the [Policy] interface.
func (p Vertical) Draw(v uint8, line int) bool {
	switch {
	case line%2 == 0 && v <= p.T[0]:
		return false // horizontal lines only
	case line%4 == 0 && v <= p.T[1]:
		return true
	case line%4 == 0 && v <= p.T[2]:
		return false // horizontal lines only
	case line%8 == 0 && v <= p.T[3]:
		return true
	default:
		return false
	}
}
