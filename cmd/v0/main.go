// Package main provides the entry point for the v0 CLI tool.
package main

import "github.com/agentstation/v0-cli/cmd/v0/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
