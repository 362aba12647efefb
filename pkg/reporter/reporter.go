// Package reporter renders per-file formatting events and the run summary
// as styled terminal output.
package reporter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/gitfmt/internal/ui/pretty"
)

// Options controls reporter output.
type Options struct {
	// Writer receives event and summary output.
	Writer io.Writer

	// Color is the color mode: "auto", "always" or "never".
	Color string

	// WorkingDir, when set, is used to shorten absolute paths for display.
	WorkingDir string
}

// Text renders events as one styled line each. It implements
// format.Reporter.
type Text struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewText creates a text reporter.
func NewText(opts Options) *Text {
	return &Text{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
	}
}

// Formatted reports that a file (or a line range of it) was rewritten.
func (t *Text) Formatted(file, rng string) {
	t.event(t.styles.Formatted.Render("formatted"), file, rng, "")
}

// Checked reports that a file (or a line range of it) needs formatting.
func (t *Text) Checked(file, rng string) {
	t.event(t.styles.Checked.Render("needs format"), file, rng, "")
}

// Skipped reports that a file was deliberately left alone.
func (t *Text) Skipped(file, reason string) {
	t.event(t.styles.Skipped.Render("skipped"), file, "", reason)
}

// Error reports a per-file failure.
func (t *Text) Error(err error, file string) {
	if file == "" {
		fmt.Fprintf(t.out, "%s %v\n", t.styles.Error.Render("error"), err)
		return
	}
	fmt.Fprintf(t.out, "%s %s: %v\n",
		t.styles.Error.Render("error"),
		t.styles.FilePath.Render(t.displayPath(file)),
		err,
	)
}

// Info reports a free-form message.
func (t *Text) Info(msg string) {
	fmt.Fprintln(t.out, t.styles.Dim.Render(msg))
}

func (t *Text) event(verb, file, rng, reason string) {
	line := verb + " " + t.styles.FilePath.Render(t.displayPath(file))
	if rng != "" {
		line += " " + t.styles.Range.Render(rng)
	}
	if reason != "" {
		line += " " + t.styles.Reason.Render("("+reason+")")
	}
	fmt.Fprintln(t.out, line)
}

// displayPath shortens a path relative to the working directory when that
// produces something more readable.
func (t *Text) displayPath(path string) string {
	if t.opts.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(t.opts.WorkingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
