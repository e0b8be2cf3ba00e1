// Package main provides the CLI entry point for sheetpeek.
package main

import (
	"os"

	"github.com/huy16/sheetpeek/internal/config"
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}
