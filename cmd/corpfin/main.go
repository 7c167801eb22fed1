// Package main provides the entry point for the corpfin CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rpgo/corpfin-calculator/internal/cli"
)

func main() {
	// CORPFIN_* overrides may come from a local .env file
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
