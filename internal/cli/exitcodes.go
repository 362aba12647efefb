package cli

import "errors"

// Exit codes for gitfmt.
const (
	// ExitSuccess indicates successful execution with nothing left to format.
	ExitSuccess = 0

	// ExitNeedsFormatting indicates check mode found files that need formatting.
	ExitNeedsFormatting = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrNeedsFormatting is returned by the format command when check mode
// found files that are not formatted. It is a soft failure: the run itself
// succeeded.
var ErrNeedsFormatting = errors.New("files need formatting")

// ErrRunFailed is returned when at least one file hit a hard engine or I/O
// failure during the run.
var ErrRunFailed = errors.New("formatting run failed")

// ErrConfig wraps configuration loading and validation failures so main
// can map them to ExitConfigError.
var ErrConfig = errors.New("configuration error")

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNeedsFormatting):
		return ExitNeedsFormatting
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrRunFailed):
		return ExitInternalError
	default:
		return ExitInternalError
	}
}
