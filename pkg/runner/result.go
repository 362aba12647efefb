package runner

import "github.com/yaklabco/gitfmt/pkg/format"

// FileOutcome records what happened to one file.
type FileOutcome struct {
	// Path is the repo-relative file path.
	Path string

	// Status classifies the formatting outcome.
	Status format.Status

	// Ranges holds the 1-based line annotations that were (or need to be)
	// reformatted. Empty for whole-file outcomes.
	Ranges []string

	// Written reports that the formatted text was written back to disk.
	Written bool

	// Err is set when the file could not be processed.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of changed files considered.
	FilesDiscovered int

	// FilesFormatted is the number of files rewritten in write mode.
	FilesFormatted int

	// FilesUnchanged is the number of files already formatted.
	FilesUnchanged int

	// FilesNeedFormat is the number of files check mode flagged.
	FilesNeedFormat int

	// FilesSkipped is the number of files deliberately not processed.
	FilesSkipped int

	// FilesErrored is the number of files that hit a hard failure.
	FilesErrored int
}

// Result is the overall outcome of a run. Files appear in processing order,
// which is the sorted order the diff source lists them in.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// NeedsFormatting reports the soft check-mode outcome: some files are not
// formatted. It is independent of HasErrors.
func (r *Result) NeedsFormatting() bool {
	return r != nil && r.Stats.FilesNeedFormat > 0
}

// HasErrors reports that at least one file hit an unexpected engine or I/O
// failure. This signals run failure even outside check mode.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}
