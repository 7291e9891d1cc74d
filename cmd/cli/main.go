// Package main is the entry point for the capability-dispatch CLI.
package main

import (
	"os"

	"capability-dispatch/cmd/cli/cmd"
	"capability-dispatch/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
