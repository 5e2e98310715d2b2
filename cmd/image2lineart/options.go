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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lineart"
)

// options holds the command line settings.
type options struct {
	output     string
	format     string
	configFile string
	preview    string
	invisible  bool
	thresholds []uint
	width      int
	scale      float64
	feed       float64
	lineWidth  float64
	noWait     bool
	verbose    bool
}

func (o *options) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", "output.svg", "output file")
	flags.StringVarP(&o.format, "format", "f", "", "output format: svg, pdf, gcode or png (default: from output file name)")
	flags.StringVar(&o.configFile, "config", "", "read settings from a JSON file")
	flags.StringVar(&o.preview, "preview", "", "also write a PNG preview to this file")
	flags.BoolVar(&o.invisible, "invisible", false, "omit the stroke style from SVG and PDF output")
	flags.UintSliceVar(&o.thresholds, "thresholds", nil, "six increasing shade levels, darkest first (default 0,50,100,158,212,240)")
	flags.IntVar(&o.width, "width", 0, "resize the image to this width before tracing")
	flags.Float64Var(&o.scale, "scale", 0, "G-code: size of one pixel in mm (default 0.1)")
	flags.Float64Var(&o.feed, "feed", 0, "G-code: drawing speed in mm/min (default 1500)")
	flags.Float64Var(&o.lineWidth, "line-width", 0, "stroke width (default 1)")
	flags.BoolVar(&o.noWait, "no-wait", false, "do not wait for enter after an error")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
}

// config merges the configuration file, if any, with the command line
// flags.  Flags which were set explicitly take precedence.
func (o *options) config(cmd *cobra.Command) (*lineart.Config, error) {
	cfg := lineart.DefaultConfig()
	if o.configFile != "" {
		data, err := os.ReadFile(o.configFile)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config file %q: %w", o.configFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("thresholds") {
		t, err := parseThresholds(o.thresholds)
		if err != nil {
			return nil, err
		}
		cfg.Thresholds = t
	}
	if flags.Changed("invisible") {
		cfg.Visible = !o.invisible
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseThresholds(vals []uint) (lineart.Thresholds, error) {
	var t lineart.Thresholds
	if len(vals) != lineart.NumShades {
		return t, fmt.Errorf("need %d thresholds, got %d: %w",
			lineart.NumShades, len(vals), lineart.ErrThresholds)
	}
	for i, v := range vals {
		if v > 255 {
			return t, fmt.Errorf("threshold %d out of range: %d", i, v)
		}
		t[i] = uint8(v)
	}
	return t, nil
}

var errFormat = errors.New("unknown output format")

// outputFormat returns the explicit format, or guesses it from the
// output file name.
func (o *options) outputFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.output)) {
		case ".svg":
			format = "svg"
		case ".pdf":
			format = "pdf"
		case ".gcode", ".nc", ".gc":
			format = "gcode"
		case ".png":
			format = "png"
		default:
			format = "svg"
		}
	}
	switch format {
	case "svg", "pdf", "gcode", "png":
		return format, nil
	default:
		return "", fmt.Errorf("%w %q", errFormat, o.format)
	}
}
