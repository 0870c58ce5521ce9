// Package main is the entry point for the corpusload CLI.
package main

import (
	"os"

	"github.com/datakit-labs/corpusload/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
