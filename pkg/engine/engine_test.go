package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gitfmt/pkg/config"
	"github.com/yaklabco/gitfmt/pkg/engine"
	"github.com/yaklabco/gitfmt/pkg/format"
)

func TestFileInfoIgnoreGlobs(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Ignore: []string{"vendor/**", "*.gen.go"},
	}
	e := engine.NewCommand(cfg)

	tests := []struct {
		name    string
		path    string
		ignored bool
	}{
		{name: "vendored file", path: "vendor/lib/lib.go", ignored: true},
		{name: "generated file", path: "pkg/api/types.gen.go", ignored: true},
		{name: "regular file", path: "pkg/api/types.go", ignored: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info, err := e.FileInfo(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.ignored, info.Ignored)
		})
	}
}

func TestFileInfoParserInference(t *testing.T) {
	t.Parallel()

	e := engine.NewCommand(nil)

	info, err := e.FileInfo(context.Background(), "cmd/main.go")
	require.NoError(t, err)
	assert.Equal(t, "go", info.Parser)

	// Detectable language, but nothing formats it by default.
	info, err = e.FileInfo(context.Background(), "main.tf")
	require.NoError(t, err)
	assert.Empty(t, info.Parser)

	// Nothing detectable at all.
	info, err = e.FileInfo(context.Background(), "NOTES")
	require.NoError(t, err)
	assert.Empty(t, info.Parser)
}

func TestSupportsRange(t *testing.T) {
	t.Parallel()

	e := engine.NewCommand(nil)

	assert.True(t, e.SupportsRange("javascript"))
	assert.False(t, e.SupportsRange("go"))
	assert.False(t, e.SupportsRange("cobol"))
}

func TestFormatRangeBoundsChecked(t *testing.T) {
	t.Parallel()

	e := engine.NewCommand(nil)

	_, err := e.FormatRange(context.Background(), "abc", 2, 10, format.Options{Path: "x.go"})
	require.Error(t, err)

	_, err = e.FormatRange(context.Background(), "abc", -1, 2, format.Options{Path: "x.go"})
	require.Error(t, err)
}

func TestFormatNoFormatter(t *testing.T) {
	t.Parallel()

	e := engine.NewCommand(nil)

	_, err := e.Format(context.Background(), "x", format.Options{Path: "data.cob"})
	require.ErrorIs(t, err, engine.ErrNoFormatter)
}

func TestFormatRunsCommand(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("relies on cat")
	}

	// An identity formatter: cat echoes stdin.
	cfg := &config.Config{
		Formatters: []config.FormatterConfig{
			{Command: "cat", Parsers: []string{"go"}},
		},
	}
	e := engine.NewCommand(cfg)

	src := "package x\n"
	out, err := e.Format(context.Background(), src, format.Options{Path: "x.go"})
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestFormatRangeSplicesWithoutNativeSupport(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("relies on tr")
	}

	cfg := &config.Config{
		Formatters: []config.FormatterConfig{
			{Command: "tr", Args: []string{"a-z", "A-Z"}, Parsers: []string{"go"}},
		},
	}
	e := engine.NewCommand(cfg)

	out, err := e.FormatRange(context.Background(), "aaa\nbbb\nccc\n", 4, 8, format.Options{Path: "x.go"})
	require.NoError(t, err)
	assert.Equal(t, "aaa\nBBB\nccc\n", out)
}

func TestFormatSurfacesStderr(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	cfg := &config.Config{
		Formatters: []config.FormatterConfig{
			{Command: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}, Parsers: []string{"go"}},
		},
	}
	e := engine.NewCommand(cfg)

	_, err := e.Format(context.Background(), "x", format.Options{Path: "x.go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestFileInfoReadsShebang(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "deploy")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\necho hi\n"), 0o755))

	e := engine.NewCommand(nil)
	info, err := e.FileInfo(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "bash", info.Parser)
}
