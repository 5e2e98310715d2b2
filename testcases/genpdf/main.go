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

// Command genpdf generates reference images for the test cases.
// It traces every test case, writes the strokes to a PDF file, and renders
// the PDF to PNG using Ghostscript.  A PNG from the built-in preview
// renderer is written next to it, for comparison.
package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/pdfout"
	"seehuhn.de/go/lineart/preview"
	"seehuhn.de/go/lineart/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	tracer, err := lineart.NewTracer(lineart.DefaultThresholds)
	if err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(refDir, name)

			if err := generate(tracer, tc, base); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(base+".pdf", base+"-gs.png"); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tracer *lineart.Tracer, tc testcases.TestCase, base string) error {
	g := tc.Grid()

	w, err := pdfout.Create(base+".pdf", g.Width(), g.Height(), nil)
	if err != nil {
		return err
	}
	canvas := preview.New(g.Width(), g.Height())

	_, err = tracer.Trace(g, lineart.MultiSink(w, canvas))
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	fd, err := os.Create(base + "-preview.png")
	if err != nil {
		return err
	}
	return errors.Join(canvas.WritePNG(fd), fd.Close())
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI, so that one PDF point is one pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
