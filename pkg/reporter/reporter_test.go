package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gitfmt/pkg/reporter"
	"github.com/yaklabco/gitfmt/pkg/runner"
)

func newBufReporter(t *testing.T) (*reporter.Text, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.NewText(reporter.Options{Writer: &buf, Color: "never"})
	return rep, &buf
}

func TestEventLines(t *testing.T) {
	t.Parallel()

	rep, buf := newBufReporter(t)

	rep.Formatted("main.go", "3-7")
	rep.Checked("util.go", "")
	rep.Skipped("vendor/lib.js", "ignored")
	rep.Error(errors.New("boom"), "broken.rs")
	rep.Info("nothing to do")

	want := "formatted main.go 3-7\n" +
		"needs format util.go\n" +
		"skipped vendor/lib.js (ignored)\n" +
		"error broken.rs: boom\n" +
		"nothing to do\n"
	assert.Equal(t, want, buf.String())
}

func TestErrorWithoutFile(t *testing.T) {
	t.Parallel()

	rep, buf := newBufReporter(t)
	rep.Error(errors.New("repository not found"), "")
	assert.Equal(t, "error repository not found\n", buf.String())
}

func TestDisplayPathRelative(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewText(reporter.Options{
		Writer:     &buf,
		Color:      "never",
		WorkingDir: "/home/dev/proj",
	})

	rep.Formatted("/home/dev/proj/pkg/a.go", "")
	assert.Equal(t, "formatted pkg/a.go\n", buf.String())
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats runner.Stats
		write bool
		want  string
	}{
		{
			name:  "all clean",
			stats: runner.Stats{FilesDiscovered: 2, FilesUnchanged: 2},
			write: true,
			want:  "2 files, 2 unchanged\n✓ all clean\n",
		},
		{
			name:  "needs formatting in check mode",
			stats: runner.Stats{FilesDiscovered: 3, FilesNeedFormat: 1, FilesUnchanged: 2},
			write: false,
			want:  "3 files, 1 need formatting, 2 unchanged\n✗ formatting needed\n",
		},
		{
			name:  "errors win",
			stats: runner.Stats{FilesDiscovered: 1, FilesErrored: 1},
			write: true,
			want:  "1 file, 1 errored\n✗ run failed\n",
		},
		{
			name:  "write mode tally",
			stats: runner.Stats{FilesDiscovered: 4, FilesFormatted: 2, FilesUnchanged: 1, FilesSkipped: 1},
			write: true,
			want:  "4 files, 2 formatted, 1 unchanged, 1 skipped\n✓ all clean\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rep, buf := newBufReporter(t)
			rep.Summary(&runner.Result{Stats: tt.stats}, tt.write)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
