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

// Package loader reads image files and converts them to grayscale.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.
package loader

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrNotFound is returned by [Load] if the input file does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrFormat is returned if the image data cannot be decoded.
	ErrFormat = errors.New("image file not recognized")
)

// Load reads and decodes the named image file.
func Load(fileName string) (*image.Gray, error) {
	f, err := os.Open(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return img, nil
}

// Decode reads an image and converts it to grayscale.
// Colours are mapped to luminance using [color.GrayModel]; no dithering
// is applied.
func Decode(r io.Reader) (*image.Gray, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if gray, ok := src.(*image.Gray); ok {
		return gray, nil
	}

	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray, nil
}

// Resize scales img to the given width, keeping the aspect ratio.
// Line art works best for images about 1600 pixels wide; smaller images
// give coarse strokes.  If width is not positive or equal to the current
// width, img is returned unchanged.
func Resize(img *image.Gray, width int) *image.Gray {
	b := img.Bounds()
	if width <= 0 || width == b.Dx() || b.Dx() == 0 {
		return img
	}
	height := max(1, (b.Dy()*width+b.Dx()/2)/b.Dx())

	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
