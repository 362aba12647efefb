// Package runner orchestrates a formatting run over the files version
// control reports as changed.
package runner

import "github.com/yaklabco/gitfmt/pkg/config"

// Options controls one run.
type Options struct {
	// Paths restricts processing to files whose repo-relative path equals
	// one of the entries or lives under one of them. Empty means every
	// changed file.
	Paths []string

	// Staged restricts processing to files with staged changes.
	Staged bool

	// Write applies formatting to disk. False is check mode: report what
	// needs formatting and leave files alone.
	Write bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}
