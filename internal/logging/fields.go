// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldRange      = "range"
	FieldReason     = "reason"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldParser = "parser"
	FieldWrite  = "write"
	FieldStaged = "staged"
	FieldBase   = "base"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesFormatted  = "files_formatted"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
