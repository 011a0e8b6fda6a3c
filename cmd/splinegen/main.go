// SPDX-License-Identifier: MIT

// Command splinegen solves one sample table (or free-form listing) read from
// a file or stdin and prints the polynomial coefficients.
package main

import (
	"flag"
	"os"

	"github.com/katalvlaran/splinegen/internal/cli"
	"github.com/katalvlaran/splinegen/internal/config"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	if err := cli.Run(cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("splinegen: %v", err)
	}
}
