// Command export writes the test cases, together with the strokes traced
// for them, to JSON.  The output can be used to check other implementations
// or to review changes to the tracer.
// Run from the lineart module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/testcases"
)

func main() {
	tracer, err := lineart.NewTracer(lineart.DefaultThresholds)
	if err != nil {
		panic(err)
	}

	var out struct {
		Thresholds []int          `json:"thresholds"`
		TestCases  []jsonTestCase `json:"testcases"`
	}
	for _, t := range lineart.DefaultThresholds {
		out.Thresholds = append(out.Thresholds, int(t))
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(tracer, category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Rows     [][]int       `json:"rows"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Axis string `json:"axis"`
	Line int    `json:"line"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

func toJSON(tracer *lineart.Tracer, category string, tc testcases.TestCase) jsonTestCase {
	g := tc.Grid()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  g.Width(),
		Height: g.Height(),
	}
	for _, row := range tc.Rows {
		r := make([]int, len(row))
		for i, v := range row {
			r[i] = int(v)
		}
		jtc.Rows = append(jtc.Rows, r)
	}
	for s := range tracer.Segments(g) {
		from, to := s.Coords()
		jtc.Segments = append(jtc.Segments, jsonSegment{
			Axis: s.Axis.String(),
			Line: s.Line,
			From: from,
			To:   to,
		})
	}
	return jtc
}
