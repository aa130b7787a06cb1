package main

import (
	"os"

	"github.com/rolldown/create-rolldown/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		if !cli.ExitSuppressed() {
			os.Exit(1)
		}
	}
}
