// Package main is the entry point for the gitfmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gitfmt/internal/cli"
	"github.com/yaklabco/gitfmt/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		// ErrNeedsFormatting is just a signal for the exit code; the
		// reporter already told the user what needs formatting.
		if !errors.Is(err, cli.ErrNeedsFormatting) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCodeForError(err)
}
