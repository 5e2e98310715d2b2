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

// Command image2lineart converts an image into six-shade line art for
// XY plotters.
//
// Usage:
//
//	image2lineart [flags] input
//
// The output is written as SVG, PDF, G-code or a PNG preview, depending on
// the --format flag or the extension of the output file.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/lineart/loader"
)

var errNoInput = errors.New("no input file specified")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, userMessage(err))
	if !opts.noWait && isTerminal(stdin) {
		fmt.Fprint(stderr, "Press enter to continue...")
		bufio.NewReader(stdin).ReadString('\n')
	}
	return 1
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image2lineart [flags] input",
		Short: "Convert an image to six-shade line art for XY plotters",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoInput
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts.register(cmd)
	return cmd
}

// userMessage turns an error into the message shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errNoInput):
		return "No input file specified."
	case errors.Is(err, loader.ErrNotFound):
		return "Input file not found."
	case errors.Is(err, loader.ErrFormat):
		return "Image file not recognized."
	default:
		return "Error: " + err.Error()
	}
}

// isTerminal reports whether r is an interactive terminal.
// The acknowledgment prompt is skipped otherwise, so that scripts do not
// hang on errors.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
