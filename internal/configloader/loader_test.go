package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gitfmt/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindProjectConfigUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), "base: main\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindProjectConfig(context.Background(), nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".gitfmt.yaml"), found)
}

func TestFindProjectConfigStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// Config above the repo root must not be picked up.
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), "base: main\n")
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	found, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindProjectConfigPrefersYamlExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yml"), "base: yml\n")
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), "base: yaml\n")

	found, err := FindProjectConfig(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".gitfmt.yaml"), found)
}

func TestLoadMergesProjectConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), `
base: develop
ignore:
  - "vendor/*"
formatters:
  - command: clang-format
    parsers: [c, cpp]
`)

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         root,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, "develop", result.Config.Base)
	assert.Equal(t, []string{"vendor/*"}, result.Config.Ignore)
	require.Len(t, result.Config.Formatters, 1)
	assert.Equal(t, "clang-format", result.Config.Formatters[0].Command)
	assert.Equal(t, []string{filepath.Join(root, ".gitfmt.yaml")}, result.LoadedFrom)
}

func TestLoadCLIConfigWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), "base: develop\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         root,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		CLIConfig:          &config.Config{Base: "release", Write: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "release", result.Config.Base)
	assert.True(t, result.Config.Write)
}

func TestLoadExplicitPathOverridesProject(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), "base: develop\n")
	explicit := filepath.Join(root, "other.yaml")
	writeFile(t, explicit, "base: explicit\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         root,
		ExplicitPath:       explicit,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, "explicit", result.Config.Base)
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoadEnvOverridesProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), "base: develop\n")
	t.Setenv("GITFMT_BASE", "main")
	t.Setenv("GITFMT_IGNORE", "dist/*, *.gen.go")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         root,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "main", result.Config.Base)
	assert.Equal(t, []string{"dist/*", "*.gen.go"}, result.Config.Ignore)
}

func TestLoadRejectsInvalidFormatter(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitfmt.yaml"), `
formatters:
  - command: ""
    parsers: [go]
`)

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:         root,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "formatters[0].command", verr.Field)
}

func TestValidateWarnsOnMissingRangePlaceholders(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{
		Formatters: []config.FormatterConfig{
			{
				Command:   "fmt",
				RangeArgs: []string{"--ranged"},
				Parsers:   []string{"go"},
			},
		},
	})

	assert.True(t, result.Valid())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "placeholders")
}

func TestValidateRejectsBadGlob(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Ignore: []string{"[bad"}})
	assert.False(t, result.Valid())
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	low := &config.Config{Base: "low", Ignore: []string{"a"}}
	mid := &config.Config{Ignore: []string{"b"}}
	high := &config.Config{Base: "high"}

	merged := MergeAll(low, mid, high)
	assert.Equal(t, "high", merged.Base)
	assert.Equal(t, []string{"b"}, merged.Ignore)
}

func TestWriteStarterConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gitfmt.yaml")
	require.NoError(t, WriteStarterConfig(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base: HEAD")

	// Existing file, non-interactive stdin: refuse.
	err = WriteStarterConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
