// Package main is the entry point for the micmuted agent.
package main

import (
	"os"

	"github.com/micmute/micmute/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
