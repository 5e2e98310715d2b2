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

// Config collects the settings for a conversion.
type Config struct {
	// Thresholds are the shade levels, darkest first.
	Thresholds Thresholds `json:"thresholds"`

	// Visible selects whether output documents show the strokes on screen.
	// Invisible output is useful for G-code generators which would
	// otherwise trace every line twice.
	Visible bool `json:"visible"`
}

// DefaultConfig returns the default settings: [DefaultThresholds] and
// visible strokes.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: DefaultThresholds,
		Visible:    true,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	return c.Thresholds.Validate()
}
