package main

import (
	"fmt"
	"os"

	"github.com/frontstrap/frontstrap/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: unexpected failure: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
