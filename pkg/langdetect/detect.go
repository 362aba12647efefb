// Package langdetect infers the parser identifier for a file.
// It uses go-enry, resolving by filename first and falling back to content
// classification, and maps enry's language names onto the canonical
// lower-case parser ids the formatter and marker tables use.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// aliases maps enry language names that differ from our parser ids.
var aliases = map[string]string{
	"shell":      "bash",
	"c++":        "cpp",
	"golang":     "go",
	"javascript": "javascript",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"docker":     "dockerfile",
	"gfm":        "markdown",
}

// Parser returns the inferred parser id for a file, or "" when none can be
// inferred. Detection by filename (extension, well-known names) wins; the
// content classifier is only consulted when the filename is ambiguous.
func Parser(path string, content []byte) string {
	name := filepath.Base(path)

	if lang, safe := enry.GetLanguageByFilename(name); safe {
		return normalize(lang)
	}
	if lang, safe := enry.GetLanguageByExtension(name); safe {
		return normalize(lang)
	}

	if len(content) == 0 {
		return ""
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Ambiguous extension (for example .h, .ts): let enry weigh content.
	if candidates := enry.GetLanguages(name, content); len(candidates) > 0 {
		return normalize(candidates[0])
	}
	return ""
}

// normalize converts an enry language name to a canonical parser id.
func normalize(lang string) string {
	lower := strings.ToLower(lang)
	if alias, ok := aliases[lower]; ok {
		return alias
	}
	return lower
}
