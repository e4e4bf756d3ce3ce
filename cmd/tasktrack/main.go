// Package main is the entry point for the tasktrack application.
// It loads configuration, seeds the in-memory task store, and starts the TUI
// or runs one of the reporting subcommands.
package main

import (
	"os"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
