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

package main

import (
	"bytes"
	"encoding/xml"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestImage writes a uniform gray PNG image and returns its path.
func writeTestImage(t *testing.T, dir string, gray uint8, w, h int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = gray
	}
	fileName := filepath.Join(dir, "in.png")
	fd, err := os.Create(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fd, img); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func runCmd(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(""), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := writeTestImage(t, dir, 0, 4, 4)

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"no input", []string{"--no-wait"}, "No input file specified."},
		{"missing", []string{filepath.Join(dir, "missing.png")}, "Input file not found."},
		{"garbage", []string{garbage}, "Image file not recognized."},
		{"thresholds", []string{"--thresholds", "0,50,50,158,212,240", good}, "must be strictly increasing"},
		{"threshold count", []string{"--thresholds", "0,50", good}, "need 6 thresholds"},
		{"format", []string{"-f", "bmp", good}, "unknown output format"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, _, stderr := runCmd(c.args...)
			if code != 1 {
				t.Errorf("exit code %d, expected 1", code)
			}
			if !strings.Contains(stderr, c.msg) {
				t.Errorf("stderr %q does not contain %q", stderr, c.msg)
			}
			if strings.Contains(stderr, "Press enter") {
				t.Error("prompt shown for non-terminal input")
			}
		})
	}
}

func TestSVG(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, 0, 8, 8)
	out := filepath.Join(dir, "out.svg")

	code, stdout, stderr := runCmd("-o", out, in)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "x pass: 4 strokes on 4 lines, 32 pixels of ink") {
		t.Errorf("unexpected summary %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	lines := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "line" {
			lines++
		}
	}
	if lines != 4 {
		t.Errorf("got %d <line> elements, expected 4", lines)
	}
	if !bytes.Contains(data, []byte(`stroke="black"`)) {
		t.Error("visible output has no stroke style")
	}
}

func TestInvisibleFromConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, 0, 8, 8)
	out := filepath.Join(dir, "out.svg")
	cfgFile := filepath.Join(dir, "config.json")
	cfg := `{"thresholds": [0, 40, 90, 150, 200, 250], "visible": false}`
	if err := os.WriteFile(cfgFile, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCmd("--config", cfgFile, "-o", out, in)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("stroke=")) {
		t.Error("invisible output has a stroke style")
	}

	// the flag overrides the file
	code, _, stderr = runCmd("--config", cfgFile, "--invisible=false", "-o", out, in)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	data, err = os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`stroke="black"`)) {
		t.Error("--invisible=false did not override the config file")
	}
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, 0, 4, 4)
	cfgFile := filepath.Join(dir, "config.json")
	if err := os.WriteFile(cfgFile, []byte(`{"thresholds": [9, 8, 7, 6, 5, 4]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runCmd("--config", cfgFile, "-o", filepath.Join(dir, "out.svg"), in)
	if code != 1 || !strings.Contains(stderr, "strictly increasing") {
		t.Errorf("exit code %d, stderr %q", code, stderr)
	}
}

func TestGCode(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, 0, 8, 8)
	out := filepath.Join(dir, "out.nc")

	code, stdout, stderr := runCmd("-o", out, "--scale", "1", in)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "(gcode)") || !strings.Contains(stdout, "pen-up travel") {
		t.Errorf("unexpected summary %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\nG1 "); n != 4 {
		t.Errorf("got %d G1 moves, expected 4", n)
	}
	if !strings.HasSuffix(string(data), "M2\n") {
		t.Error("program not terminated")
	}
}

func TestPDF(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, 100, 8, 8)
	out := filepath.Join(dir, "out.pdf")

	code, _, stderr := runCmd("-o", out, in)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("missing PDF header")
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, 0, 8, 8)
	out := filepath.Join(dir, "out.svg")
	pv := filepath.Join(dir, "preview.png")

	code, _, stderr := runCmd("-o", out, "--preview", pv, "--width", "16", "-v", in)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "image loaded") {
		t.Errorf("verbose log missing: %q", stderr)
	}

	fd, err := os.Open(pv)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("preview size %v, expected 16x16", b)
	}
	// rows 0, 2, 4, ... are inked, the others are blank
	for y := range 4 {
		g := color.GrayModel.Convert(img.At(8, y)).(color.Gray).Y
		if inked := g < 128; inked != (y%2 == 0) {
			t.Errorf("row %d: gray value %d", y, g)
		}
	}
}
