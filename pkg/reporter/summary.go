package reporter

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gitfmt/pkg/runner"
)

// Summary renders a one-line tally of the run, followed by a verdict line
// when the run was not fully clean.
func (t *Text) Summary(res *runner.Result, write bool) {
	s := res.Stats

	var parts []string
	parts = append(parts, plural(s.FilesDiscovered, "file"))
	if s.FilesFormatted > 0 {
		parts = append(parts, fmt.Sprintf("%d formatted", s.FilesFormatted))
	}
	if s.FilesNeedFormat > 0 {
		parts = append(parts, fmt.Sprintf("%d need formatting", s.FilesNeedFormat))
	}
	if s.FilesUnchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.FilesUnchanged))
	}
	if s.FilesSkipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.FilesSkipped))
	}
	if s.FilesErrored > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", s.FilesErrored))
	}

	fmt.Fprintln(t.out, t.styles.SummaryTitle.Render(strings.Join(parts, ", ")))

	switch {
	case res.HasErrors():
		fmt.Fprintln(t.out, t.styles.Failure.Render("✗ run failed"))
	case res.NeedsFormatting() && !write:
		fmt.Fprintln(t.out, t.styles.Failure.Render("✗ formatting needed"))
	default:
		fmt.Fprintln(t.out, t.styles.Success.Render("✓ all clean"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
