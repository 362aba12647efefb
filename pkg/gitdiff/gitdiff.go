// Package gitdiff supplies the version-control side of a run: which files
// changed, their content at the base revision, and the changed-line ranges
// between base and working tree.
package gitdiff

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotFound indicates a path has no blob at the base revision.
var ErrNotFound = errors.New("path not present at base revision")

// Repo wraps an opened git repository and its worktree.
type Repo struct {
	repo *gogit.Repository
	wt   *gogit.Worktree
}

// Open locates and opens the repository containing dir, walking upwards to
// find the .git directory the way the git CLI does.
func Open(dir string) (*Repo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}
	return &Repo{repo: repo, wt: wt}, nil
}

// Root returns the absolute path of the worktree root. Paths returned by
// the file listing methods are relative to it.
func (r *Repo) Root() string {
	return r.wt.Filesystem.Root()
}

// ChangedFiles lists worktree-relative paths with staged or unstaged
// modifications, including untracked files, sorted for reproducible runs.
func (r *Repo) ChangedFiles(ctx context.Context) ([]string, error) {
	status, err := r.status(ctx)
	if err != nil {
		return nil, err
	}

	var files []string
	for path, st := range status {
		if st.Staging == gogit.Unmodified && st.Worktree == gogit.Unmodified {
			continue
		}
		if st.Staging == gogit.Deleted || st.Worktree == gogit.Deleted {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// StagedFiles lists worktree-relative paths with changes staged in the
// index, sorted for reproducible runs.
func (r *Repo) StagedFiles(ctx context.Context) ([]string, error) {
	status, err := r.status(ctx)
	if err != nil {
		return nil, err
	}

	var files []string
	for path, st := range status {
		switch st.Staging {
		case gogit.Added, gogit.Modified, gogit.Renamed, gogit.Copied:
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

// UntrackedFiles lists worktree-relative paths git does not know about.
func (r *Repo) UntrackedFiles(ctx context.Context) ([]string, error) {
	status, err := r.status(ctx)
	if err != nil {
		return nil, err
	}

	var files []string
	for path, st := range status {
		if st.Worktree == gogit.Untracked {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

// IsIndexClean reports whether the file has no unstaged modifications, so
// a write-back after formatting cannot clobber work that was never staged.
func (r *Repo) IsIndexClean(ctx context.Context, path string) (bool, error) {
	status, err := r.status(ctx)
	if err != nil {
		return false, err
	}
	return status.File(path).Worktree == gogit.Unmodified, nil
}

// BaseContent returns the file's content at the given revision. The second
// return is false when the path does not exist there, which callers treat
// as "whole file is new".
func (r *Repo) BaseContent(ctx context.Context, path, rev string) (string, bool, error) {
	_ = ctx

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", false, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return "", false, fmt.Errorf("load commit %s: %w", hash, err)
	}

	file, err := commit.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s at %s: %w", path, rev, err)
	}

	content, err := file.Contents()
	if err != nil {
		return "", false, fmt.Errorf("read %s at %s: %w", path, rev, err)
	}
	return content, true, nil
}

func (r *Repo) status(ctx context.Context) (gogit.Status, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	status, err := r.wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}
	return status, nil
}
