// Package main is the entry point for the wizflow CLI.
//
// wizflow runs step-by-step wizards declared in YAML, JSON or TOML files,
// either in an interactive terminal UI or as plain line prompts.
//
// Commands: run, validate, graph.
//
// For detailed usage information, run:
//
//	wizflow --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/wizflow/cmd/wizflow/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
