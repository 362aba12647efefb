package gitdiff_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gitfmt/pkg/gitdiff"
)

// testRepo builds a repository with one committed file and returns its root.
func testRepo(t *testing.T) (string, *gogit.Worktree) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")

	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add("main.go")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, wt
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestOpenDetectsDotGit(t *testing.T) {
	t.Parallel()

	dir, _ := testRepo(t)
	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := gitdiff.Open(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, repo.Root())
}

func TestChangedFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir, _ := testRepo(t)

	repo, err := gitdiff.Open(dir)
	require.NoError(t, err)

	files, err := repo.ChangedFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	writeFile(t, dir, "main.go", "package main\n\nfunc main() { println() }\n")
	writeFile(t, dir, "extra.go", "package main\n")

	files, err = repo.ChangedFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"extra.go", "main.go"}, files)

	untracked, err := repo.UntrackedFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"extra.go"}, untracked)
}

func TestStagedFilesAndIndexClean(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir, wt := testRepo(t)

	repo, err := gitdiff.Open(dir)
	require.NoError(t, err)

	writeFile(t, dir, "main.go", "package main\n\nfunc main() { println() }\n")

	staged, err := repo.StagedFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)

	clean, err := repo.IsIndexClean(ctx, "main.go")
	require.NoError(t, err)
	assert.False(t, clean)

	_, err = wt.Add("main.go")
	require.NoError(t, err)

	staged, err = repo.StagedFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, staged)

	clean, err = repo.IsIndexClean(ctx, "main.go")
	require.NoError(t, err)
	assert.True(t, clean)
}

func TestBaseContent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir, _ := testRepo(t)

	repo, err := gitdiff.Open(dir)
	require.NoError(t, err)

	content, ok, err := repo.BaseContent(ctx, "main.go", "HEAD")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "package main\n\nfunc main() {}\n", content)

	_, ok, err = repo.BaseContent(ctx, "missing.go", "HEAD")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = repo.BaseContent(ctx, "main.go", "does-not-exist")
	require.Error(t, err)
}
