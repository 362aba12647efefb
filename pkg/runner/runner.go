package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gitfmt/internal/logging"
	"github.com/yaklabco/gitfmt/pkg/format"
	"github.com/yaklabco/gitfmt/pkg/fsutil"
	"github.com/yaklabco/gitfmt/pkg/gitdiff"
	"github.com/yaklabco/gitfmt/pkg/textrange"
)

// DiffSource supplies changed-file lists and base revision content.
// *gitdiff.Repo implements it; tests substitute fakes.
type DiffSource interface {
	Root() string
	ChangedFiles(ctx context.Context) ([]string, error)
	StagedFiles(ctx context.Context) ([]string, error)
	UntrackedFiles(ctx context.Context) ([]string, error)
	IsIndexClean(ctx context.Context, path string) (bool, error)
	BaseContent(ctx context.Context, path, rev string) (string, bool, error)
}

// Runner processes changed files one at a time: read, pick a strategy,
// format, compare or write, report. Files are processed to completion in
// order; there is no parallelism and no shared mutable state between files.
type Runner struct {
	source    DiffSource
	formatter *format.Formatter
	rep       format.Reporter
}

// New creates a Runner.
func New(source DiffSource, formatter *format.Formatter, rep format.Reporter) *Runner {
	return &Runner{source: source, formatter: formatter, rep: rep}
}

// Run formats (or checks) every changed file and returns the aggregate
// result. Per-file failures are recorded and reported but do not abort the
// run; the caller inspects Result.HasErrors afterwards.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, untracked, err := r.discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	logging.FromContext(ctx).Debug("processing changed files",
		logging.FieldFiles, len(files),
		logging.FieldWrite, opts.Write,
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled: %w", err)
		}
		outcome := r.processFile(ctx, file, untracked[file], opts)
		result.accumulate(outcome)
	}

	return result, nil
}

// discover lists candidate files and marks which are untracked. Untracked
// files have no base revision, so they get whole-document formatting.
func (r *Runner) discover(ctx context.Context, opts Options) ([]string, map[string]bool, error) {
	var (
		files []string
		err   error
	)
	if opts.Staged {
		files, err = r.source.StagedFiles(ctx)
	} else {
		files, err = r.source.ChangedFiles(ctx)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("list changed files: %w", err)
	}

	untrackedList, err := r.source.UntrackedFiles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list untracked files: %w", err)
	}
	untracked := make(map[string]bool, len(untrackedList))
	for _, f := range untrackedList {
		untracked[f] = true
	}

	if len(opts.Paths) > 0 {
		files = filterPaths(files, opts.Paths)
	}
	return files, untracked, nil
}

// processFile runs the full per-file pipeline. All failures end up in the
// outcome; the run continues with the next file.
func (r *Runner) processFile(ctx context.Context, file string, isUntracked bool, opts Options) FileOutcome {
	outcome := FileOutcome{Path: file}

	abs := filepath.Join(r.source.Root(), file)
	if !fsutil.IsRegularFile(abs) {
		r.rep.Skipped(file, "not a regular file")
		outcome.Status = format.StatusSkipped
		return outcome
	}

	text, mode, err := fsutil.ReadText(ctx, abs)
	if err != nil {
		r.rep.Error(err, file)
		outcome.Err = err
		return outcome
	}

	ranges, tracked, err := r.changeRanges(ctx, file, text, isUntracked, opts)
	if err != nil {
		r.rep.Error(err, file)
		outcome.Err = err
		return outcome
	}
	if tracked && len(ranges) == 0 {
		// Metadata-only change; content matches the base revision.
		outcome.Status = format.StatusUnchanged
		return outcome
	}

	if opts.Staged && opts.Write {
		clean, err := r.source.IsIndexClean(ctx, file)
		if err != nil {
			r.rep.Error(err, file)
			outcome.Err = err
			return outcome
		}
		if !clean {
			r.rep.Skipped(file, "unstaged changes present")
			outcome.Status = format.StatusSkipped
			return outcome
		}
	}

	fmtOutcome, err := r.formatter.File(ctx, abs, text, ranges)
	if err != nil {
		r.rep.Error(err, file)
		outcome.Err = err
		return outcome
	}

	outcome.Status = fmtOutcome.Status
	outcome.Ranges = fmtOutcome.Ranges

	if fmtOutcome.Status == format.StatusChanged && opts.Write {
		if err := fsutil.WriteAtomic(ctx, abs, []byte(fmtOutcome.Text), mode); err != nil {
			r.rep.Error(err, file)
			outcome.Err = err
			return outcome
		}
		outcome.Written = true
	}
	return outcome
}

// changeRanges resolves the file's changed lines against the base revision.
// The second return reports whether the file is tracked there.
func (r *Runner) changeRanges(ctx context.Context, file, text string, isUntracked bool, opts Options) ([]textrange.ChangeRange, bool, error) {
	if isUntracked {
		return nil, false, nil
	}
	base, ok, err := r.source.BaseContent(ctx, file, opts.config().BaseRef())
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return gitdiff.Ranges(base, text), true, nil
}

func (result *Result) accumulate(outcome FileOutcome) {
	result.Files = append(result.Files, outcome)

	switch {
	case outcome.Err != nil:
		result.Stats.FilesErrored++
	case outcome.Status == format.StatusSkipped:
		result.Stats.FilesSkipped++
	case outcome.Status == format.StatusUnchanged:
		result.Stats.FilesUnchanged++
	case outcome.Written:
		result.Stats.FilesFormatted++
	default:
		result.Stats.FilesNeedFormat++
	}
}

// filterPaths keeps files equal to a filter entry or nested under one.
func filterPaths(files, filters []string) []string {
	var out []string
	for _, f := range files {
		for _, filter := range filters {
			filter = filepath.ToSlash(filepath.Clean(filter))
			if f == filter || strings.HasPrefix(f, filter+"/") {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
