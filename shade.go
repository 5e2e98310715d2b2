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
	"image"
)

// NumShades is the number of tonal buckets a pixel is reduced to.
const NumShades = 6

// NoInk is the bucket value of the lightest shade.
// Runs of this shade are never drawn.
const NoInk uint8 = 255

// ErrThresholds is returned when the shade thresholds are not strictly
// increasing.
var ErrThresholds = errors.New("shade thresholds must be strictly increasing")

// Thresholds holds the six shade levels, darkest first.
//
// T[0] is the value of the darkest bucket.  T[1] to T[5] are the cut points:
// an intensity below T[k] (and not below T[k-1]) is reduced to T[k-1].
// Intensities at or above T[5] are reduced to [NoInk].
type Thresholds [NumShades]uint8

// DefaultThresholds are suitable for most photographs.  Darker or lighter
// images may need some tweaking.
var DefaultThresholds = Thresholds{0, 50, 100, 158, 212, 240}

// Validate checks that the thresholds are strictly increasing.
func (t Thresholds) Validate() error {
	for k := 1; k < NumShades; k++ {
		if t[k] <= t[k-1] {
			return fmt.Errorf("threshold %d (%d) <= threshold %d (%d): %w",
				k, t[k], k-1, t[k-1], ErrThresholds)
		}
	}
	return nil
}

// Buckets returns the six bucket values in increasing order.
func (t Thresholds) Buckets() [NumShades]uint8 {
	var res [NumShades]uint8
	copy(res[:], t[:NumShades-1])
	res[NumShades-1] = NoInk
	return res
}

// quantize maps an intensity to its bucket by scanning the cut points in
// ascending order.
func (t Thresholds) quantize(v uint8) uint8 {
	for k := 1; k < NumShades; k++ {
		if v < t[k] {
			return t[k-1]
		}
	}
	return NoInk
}

// Quantizer reduces intensities to one of six shades.
// A Quantizer is immutable and safe for concurrent use.
type Quantizer struct {
	thresholds Thresholds
	lut        [256]uint8
}

// NewQuantizer returns a Quantizer for the given thresholds.
func NewQuantizer(t Thresholds) (*Quantizer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	q := &Quantizer{thresholds: t}
	for v := range 256 {
		q.lut[v] = t.quantize(uint8(v))
	}
	return q, nil
}

// Thresholds returns the thresholds the quantizer was built from.
func (q *Quantizer) Thresholds() Thresholds {
	return q.thresholds
}

// Quantize returns the bucket for intensity v.
func (q *Quantizer) Quantize(v uint8) uint8 {
	return q.lut[v]
}

// Grid quantizes every pixel of img.
// The result has the size of img.Bounds(); an empty image gives an error.
func (q *Quantizer) Grid(img *image.Gray) (Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Grid{}, ErrEmptyGrid
	}

	pix := make([]uint8, w*h)
	for y := range h {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		row := pix[y*w : (y+1)*w]
		for x := range row {
			row[x] = q.lut[src[x]]
		}
	}
	return Grid{width: w, height: h, pix: pix}, nil
}
