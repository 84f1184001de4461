// SPDX-License-Identifier: MIT

// Package main provides the polconv CLI: polarization basis conversion of
// interferometric visibilities from the command line or from YAML job files.
//
// Usage:
//
//	polconv [--verbose] <command> [options]
//
// Commands:
//   - convert: convert one visibility vector between type lists
//   - psf:     synthesize point-source visibilities in a basis
//   - matrix:  print the transform between two type lists as YAML
//   - run:     run every job in a YAML job file
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	app := newApp()
	app.ExitErrHandler = exitErrHandler

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// exitErrHandler prints the error and exits with the code carried by cli.Exit, or 1.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
