// Package fsutil provides the file system primitives gitfmt relies on:
// whole-file reads with metadata, regular-file checks, and atomic writes.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotRegular indicates the path is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// ReadText reads a file as text and returns its content together with the
// file mode, so a later write-back can preserve permissions.
func ReadText(ctx context.Context, path string) (string, os.FileMode, error) {
	select {
	case <-ctx.Done():
		return "", 0, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return "", 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !stat.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return "", 0, fmt.Errorf("read %s: %w", path, err)
	}
	return string(content), stat.Mode().Perm(), nil
}

// IsRegularFile reports whether path names an existing regular file.
func IsRegularFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
