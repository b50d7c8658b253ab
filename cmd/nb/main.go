// Package main is the entry point for the nb CLI tool.
package main

import (
	"os"

	"github.com/networkbook/networkbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
