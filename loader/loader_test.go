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

package loader

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := range 4 {
		for x := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(x * 30), B: uint8(x * 30), A: 255})
		}
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img
}

func checkGray(t *testing.T, gray *image.Gray) {
	t.Helper()
	if b := gray.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("wrong size %v", b)
	}
	if got := gray.GrayAt(0, 0).Y; got != 76 {
		t.Errorf("red pixel converted to %d, want 76", got)
	}
	if got := gray.GrayAt(3, 2).Y; got != 90 {
		t.Errorf("gray pixel converted to %d, want 90", got)
	}
}

func TestFormats(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(buf *bytes.Buffer, img image.Image) error { return png.Encode(buf, img) },
		"bmp": func(buf *bytes.Buffer, img image.Image) error { return bmp.Encode(buf, img) },
		"tiff": func(buf *bytes.Buffer, img image.Image) error {
			return tiff.Encode(buf, img, nil)
		},
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := encode(buf, testImage()); err != nil {
				t.Fatal(err)
			}
			gray, err := Decode(buf)
			if err != nil {
				t.Fatal(err)
			}
			checkGray(t, gray)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	fileName := filepath.Join(dir, "in.png")
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fileName, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	gray, err := Load(fileName)
	if err != nil {
		t.Fatal(err)
	}
	checkGray(t, gray)

	_, err = Load(filepath.Join(dir, "missing.png"))
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	textFile := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textFile, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(textFile)
	if !errors.Is(err, ErrFormat) || !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("format error reported as missing file")
	}
}

func TestResize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 40, 30))
	for i := range img.Pix {
		img.Pix[i] = 200
	}

	big := Resize(img, 160)
	if b := big.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("wrong size %v", b)
	}
	if v := big.GrayAt(80, 60).Y; v < 199 || v > 201 {
		t.Errorf("uniform image changed to %d", v)
	}

	if Resize(img, 0) != img || Resize(img, 40) != img {
		t.Error("image should be returned unchanged")
	}
	if b := Resize(img, 1).Bounds(); b.Dy() != 1 {
		t.Errorf("height %d, want 1", b.Dy())
	}
}
