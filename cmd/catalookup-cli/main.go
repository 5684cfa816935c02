// Package main is the entry point for the catalookup CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kailas-cloud/catalookup/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
