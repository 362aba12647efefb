package engine

import (
	"path/filepath"
	"strconv"
	"strings"
)

// renderArgs expands the {path}, {rangeStart} and {rangeEnd} placeholders.
// Negative bounds mean no range is in play and range placeholders render
// empty.
func renderArgs(args []string, path string, start, end int) []string {
	if len(args) == 0 {
		return nil
	}

	startStr, endStr := "", ""
	if start >= 0 {
		startStr = strconv.Itoa(start)
	}
	if end >= 0 {
		endStr = strconv.Itoa(end)
	}

	out := make([]string, len(args))
	for i, a := range args {
		a = strings.ReplaceAll(a, "{path}", path)
		a = strings.ReplaceAll(a, "{rangeStart}", startStr)
		a = strings.ReplaceAll(a, "{rangeEnd}", endStr)
		out[i] = a
	}
	return out
}

// matchGlob matches a path against an ignore pattern. It supports simple
// patterns like "*.gen.go" (also tried against the base name) and
// "vendor/**" style recursive patterns.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStar handles the "prefix/**", "**/suffix" and "**" forms.
func matchDoubleStar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	}
	if suffix == "" {
		return true
	}
	if matched, err := filepath.Match(suffix, filepath.Base(path)); err == nil && matched {
		return true
	}
	return strings.HasSuffix(path, "/"+suffix) || path == suffix
}
