// Package main is the entry point for the hearth CLI/TUI.
package main

import (
	"os"

	"github.com/hearthware/hearth/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
