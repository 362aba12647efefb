package format

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/gitfmt/internal/logging"
	"github.com/yaklabco/gitfmt/pkg/marker"
	"github.com/yaklabco/gitfmt/pkg/textrange"
)

// Config controls a Formatter.
type Config struct {
	// Write selects apply mode; false is check mode, which only reports.
	Write bool

	// UID is the process-wide marker identifier from marker.NewUID.
	UID string
}

// Formatter dispatches files to a formatting strategy while preserving the
// invariant that text outside the requested ranges never changes.
type Formatter struct {
	engine Engine
	rep    Reporter
	cfg    Config
}

// NewFormatter creates a Formatter over the given engine and event sink.
func NewFormatter(engine Engine, rep Reporter, cfg Config) *Formatter {
	return &Formatter{engine: engine, rep: rep, cfg: cfg}
}

// File formats one file's text according to its change ranges and returns
// the outcome. A nil or empty ranges slice means the whole file is new and
// gets whole-document formatting. Files the engine ignores, or for which no
// parser can be inferred, are trivially already formatted.
//
// Marker-strategy failures are absorbed: the error is reported and the file
// falls back to the offset-range strategy.
func (f *Formatter) File(ctx context.Context, path, text string, ranges []textrange.ChangeRange) (Outcome, error) {
	info, err := f.engine.FileInfo(ctx, path)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve file info for %s: %w", path, err)
	}
	if info.Ignored {
		f.rep.Skipped(path, "ignored by formatter configuration")
		return Outcome{Status: StatusSkipped, SkipReason: "ignored"}, nil
	}
	if info.Parser == "" {
		f.rep.Skipped(path, "no parser inferred")
		return Outcome{Status: StatusSkipped, SkipReason: "no parser"}, nil
	}

	if len(ranges) == 0 || f.coversWholeDocument(text, ranges) {
		return f.wholeDocument(ctx, path, text)
	}

	ordered := sortedByStart(ranges)

	if f.engine.SupportsRange(info.Parser) {
		return f.offsetRange(ctx, path, text, ordered)
	}

	out, err := f.markerBased(ctx, path, text, ordered, info.Parser)
	if err != nil {
		logging.FromContext(ctx).Debug("marker strategy failed, falling back to offset ranges",
			"file", path, "err", err)
		f.rep.Error(err, path)
		return f.offsetRange(ctx, path, text, ordered)
	}
	return out, nil
}

// coversWholeDocument reports the degenerate case of exactly one range
// spanning from the first line to within one line of the document's last
// line. Formatting that span is equivalent to whole-document formatting, so
// both partial strategies delegate instead of fencing or slicing.
func (f *Formatter) coversWholeDocument(text string, ranges []textrange.ChangeRange) bool {
	if len(ranges) != 1 {
		return false
	}
	r := ranges[0]
	if r.Lower() != 1 {
		return false
	}
	idx := textrange.NewLineOffsetIndex(text)
	return r.End() >= idx.LineCount()-1
}

func (f *Formatter) wholeDocument(ctx context.Context, path, text string) (Outcome, error) {
	formatted, err := f.engine.Format(ctx, text, Options{Path: path})
	if err != nil {
		return Outcome{}, fmt.Errorf("format %s: %w", path, err)
	}

	if len(formatted) == len(text) && formatted == text {
		return Outcome{Status: StatusUnchanged}, nil
	}

	if f.cfg.Write {
		f.rep.Formatted(path, "")
	} else {
		f.rep.Checked(path, "")
	}
	return Outcome{Status: StatusChanged, Text: formatted}, nil
}

// offsetRange formats each range through the engine's own partial-range
// parameter. Ranges are applied cumulatively: each one formats the result of
// the previous, so later offsets are recomputed against the current text.
func (f *Formatter) offsetRange(ctx context.Context, path, text string, ranges []textrange.ChangeRange) (Outcome, error) {
	current := text
	var annotations []string

	for _, r := range ranges {
		idx := textrange.NewLineOffsetIndex(current)
		start := idx.OffsetOf(r.Start())
		end := len(current)
		if r.End() <= idx.LineCount() {
			end = idx.OffsetOf(r.End())
		}

		next, err := f.engine.FormatRange(ctx, current, start, end, Options{Path: path})
		if err != nil {
			return Outcome{}, fmt.Errorf("format %s range %s: %w", path, r.Lines(), err)
		}

		if next != current {
			annotations = append(annotations, r.Lines())
			if !f.cfg.Write {
				f.rep.Checked(path, r.Lines())
			}
		}
		current = next
	}

	if len(annotations) == 0 {
		return Outcome{Status: StatusUnchanged}, nil
	}
	if f.cfg.Write {
		f.rep.Formatted(path, strings.Join(annotations, ","))
	}
	return Outcome{Status: StatusChanged, Text: current, Ranges: annotations}, nil
}

// markerBased fences every range with marker comments, formats the whole
// fenced document once, and merges the result so only fenced interiors take
// the formatted text. Any failure here is returned to the dispatcher, which
// falls back to offsetRange.
func (f *Formatter) markerBased(ctx context.Context, path, text string, ranges []textrange.ChangeRange, parser string) (Outcome, error) {
	marked, err := marker.InsertMarkers(text, ranges, parser, f.cfg.UID)
	if err != nil {
		return Outcome{}, err
	}

	formattedMarked, err := f.engine.Format(ctx, marked, Options{Path: path})
	if err != nil {
		return Outcome{}, fmt.Errorf("format marked %s: %w", path, err)
	}

	merged, err := marker.MergeMarkedSections(marked, formattedMarked, parser, f.cfg.UID)
	if err != nil {
		return Outcome{}, err
	}

	normalized := text
	if !strings.HasSuffix(normalized, "\n") {
		normalized += "\n"
	}
	if merged == normalized {
		return Outcome{Status: StatusUnchanged}, nil
	}

	annotations, err := f.changedRangeAnnotations(marked, formattedMarked, ranges, parser)
	if err != nil {
		return Outcome{}, err
	}

	if f.cfg.Write {
		f.rep.Formatted(path, strings.Join(annotations, ","))
	} else {
		for _, a := range annotations {
			f.rep.Checked(path, a)
		}
	}
	return Outcome{Status: StatusChanged, Text: merged, Ranges: annotations}, nil
}

// changedRangeAnnotations maps differing fenced interiors back to their
// ranges. Segments at odd indexes are interiors; the i-th interior
// corresponds to the i-th range in ascending start order, because insertion
// fences ranges positionally.
func (f *Formatter) changedRangeAnnotations(marked, formattedMarked string, ranges []textrange.ChangeRange, parser string) ([]string, error) {
	origSegs, err := marker.Split(marked, parser, f.cfg.UID)
	if err != nil {
		return nil, err
	}
	fmtSegs, err := marker.Split(formattedMarked, parser, f.cfg.UID)
	if err != nil {
		return nil, err
	}
	if len(origSegs) != len(fmtSegs) {
		return nil, &marker.MarkerMismatchError{
			OriginalSegments:  len(origSegs),
			FormattedSegments: len(fmtSegs),
		}
	}

	var annotations []string
	interior := 0
	for i := 1; i < len(origSegs); i += 2 {
		if origSegs[i] != fmtSegs[i] && interior < len(ranges) {
			annotations = append(annotations, ranges[interior].Lines())
		}
		interior++
	}
	if len(annotations) == 0 {
		// The texts differ only by whitespace consumed with the markers.
		annotations = append(annotations, ranges[0].Lines())
	}
	return annotations, nil
}

// sortedByStart returns a copy of ranges ordered ascending by start line,
// the stable presentation order cumulative formatting relies on.
func sortedByStart(ranges []textrange.ChangeRange) []textrange.ChangeRange {
	out := make([]textrange.ChangeRange, len(ranges))
	copy(out, ranges)
	sort.Slice(out, func(i, j int) bool { return out[i].Start() < out[j].Start() })
	return out
}
