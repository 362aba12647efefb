// Package format decides how to apply an external formatting engine to a
// file so that only its changed line ranges are reformatted. Three mutually
// exclusive strategies exist per file: whole-document, offset-range (the
// engine's own partial-range support), and marker-based (comment fences
// around each range, then a whole-document pass and a merge).
package format

import "context"

// FileInfo is the engine's metadata for one file path.
type FileInfo struct {
	// Ignored reports that the engine's configuration excludes this file.
	Ignored bool

	// Parser is the engine's inferred parser identifier, or "" when none
	// can be inferred from the path or content.
	Parser string
}

// Options carries per-call hints to the engine. Path is used purely to pick
// formatting rules; the engine never reads the file at that path.
type Options struct {
	Path string
}

// Engine is the external formatting collaborator.
type Engine interface {
	// Format returns the formatted form of text.
	Format(ctx context.Context, text string, opts Options) (string, error)

	// FormatRange formats only the half-open character span [start, end).
	// Text outside the span must come back byte-identical.
	FormatRange(ctx context.Context, text string, start, end int, opts Options) (string, error)

	// FileInfo resolves ignore status and the inferred parser for a path.
	FileInfo(ctx context.Context, path string) (FileInfo, error)

	// SupportsRange reports whether the engine's partial-range support is
	// native and reliable for the given parser. When false the dispatcher
	// prefers the marker strategy.
	SupportsRange(parser string) bool
}

// Reporter receives the per-file events this package produces. The range
// argument is a 1-based inclusive "<start>-<end>" string, or "" for a
// whole-file event.
type Reporter interface {
	// Formatted records that a file (or a range of it) was reformatted.
	Formatted(file, rng string)

	// Checked records that a file (or a range of it) needs formatting.
	Checked(file, rng string)

	// Skipped records that a file was deliberately not processed.
	Skipped(file, reason string)

	// Error records a recoverable per-file failure.
	Error(err error, file string)

	// Info records a free-form informational message.
	Info(msg string)
}

// Status classifies the outcome of formatting one file.
type Status int

const (
	// StatusUnchanged means the file is already formatted.
	StatusUnchanged Status = iota

	// StatusChanged means formatting produced different text.
	StatusChanged

	// StatusSkipped means the file was not processed, by policy.
	StatusSkipped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusChanged:
		return "changed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the result of applying a strategy to one file.
type Outcome struct {
	// Status classifies the result.
	Status Status

	// Text is the formatted text. Valid when Status is StatusChanged.
	Text string

	// Ranges holds 1-based inclusive line annotations for the ranges that
	// needed formatting. Empty for whole-document outcomes.
	Ranges []string

	// SkipReason explains a StatusSkipped outcome.
	SkipReason string
}
