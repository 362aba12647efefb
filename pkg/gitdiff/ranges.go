package gitdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yaklabco/gitfmt/pkg/textrange"
)

// Ranges computes the changed-line ranges of newText relative to oldText as
// 1-based half-open intervals over newText's lines. Inserted lines are changed; a pure
// deletion marks the line now sitting at the deletion point, so formatting
// can still reconcile the joint. Adjacent and overlapping intervals are
// merged and the result is sorted ascending by start line, the presentation
// order the formatting strategies rely on.
func Ranges(oldText, newText string) []textrange.ChangeRange {
	if oldText == newText {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	type interval struct{ lower, upper int }
	var intervals []interval

	line := 1 // 1-based position in new
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += n
		case diffmatchpatch.DiffInsert:
			if n > 0 {
				intervals = append(intervals, interval{lower: line, upper: line + n})
			}
			line += n
		case diffmatchpatch.DiffDelete:
			intervals = append(intervals, interval{lower: line, upper: line + 1})
		}
	}

	if len(intervals) == 0 {
		return nil
	}

	// Merge touching intervals; diffs arrive in positional order.
	merged := intervals[:1]
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.lower <= last.upper {
			if iv.upper > last.upper {
				last.upper = iv.upper
			}
			continue
		}
		merged = append(merged, iv)
	}

	out := make([]textrange.ChangeRange, 0, len(merged))
	for _, iv := range merged {
		r, err := textrange.New(iv.lower, iv.upper)
		if err != nil {
			continue // zero-width after clamping, nothing to format
		}
		out = append(out, r)
	}
	return out
}

// countLines counts the lines of a diff fragment. Fragments produced in
// line mode end with a terminator except possibly the last one.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
