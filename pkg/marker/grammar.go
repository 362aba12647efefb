// Package marker implements the fence protocol that lets a whole-document
// formatting pass touch only selected line ranges. Paired comment tokens are
// inserted around each range, the formatter runs over the fenced text, and
// the result is recombined so everything outside the fences comes back from
// the original byte-for-byte.
package marker

import "fmt"

// UnsupportedLanguageError indicates no comment grammar is registered for a
// language, so no syntactically inert marker can be produced for it.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("no comment grammar registered for language %q", e.Language)
}

// grammarKind distinguishes line comments from paired block comments.
type grammarKind int

const (
	lineComment grammarKind = iota
	blockComment
)

// grammar describes how to wrap a token so it parses as a comment.
type grammar struct {
	kind   grammarKind
	prefix string // line comment prefix
	open   string // block comment opener
	close  string // block comment closer
}

func (g grammar) wrap(token string) string {
	if g.kind == lineComment {
		return g.prefix + " " + token
	}
	return g.open + " " + token + " " + g.close
}

// grammars maps language identifiers (lower-case, as produced by langdetect)
// to their comment grammar. Languages absent here cannot use the marker
// strategy and fall back to offset-range formatting.
var grammars = map[string]grammar{
	"go":         {kind: lineComment, prefix: "//"},
	"python":     {kind: lineComment, prefix: "#"},
	"shell":      {kind: lineComment, prefix: "#"},
	"bash":       {kind: lineComment, prefix: "#"},
	"ruby":       {kind: lineComment, prefix: "#"},
	"perl":       {kind: lineComment, prefix: "#"},
	"yaml":       {kind: lineComment, prefix: "#"},
	"toml":       {kind: lineComment, prefix: "#"},
	"dockerfile": {kind: lineComment, prefix: "#"},
	"sql":        {kind: lineComment, prefix: "--"},
	"lua":        {kind: lineComment, prefix: "--"},

	"javascript": {kind: blockComment, open: "/*", close: "*/"},
	"typescript": {kind: blockComment, open: "/*", close: "*/"},
	"jsx":        {kind: blockComment, open: "/*", close: "*/"},
	"tsx":        {kind: blockComment, open: "/*", close: "*/"},
	"css":        {kind: blockComment, open: "/*", close: "*/"},
	"scss":       {kind: blockComment, open: "/*", close: "*/"},
	"less":       {kind: blockComment, open: "/*", close: "*/"},
	"c":          {kind: blockComment, open: "/*", close: "*/"},
	"cpp":        {kind: blockComment, open: "/*", close: "*/"},
	"java":       {kind: blockComment, open: "/*", close: "*/"},
	"rust":       {kind: blockComment, open: "/*", close: "*/"},

	"html":     {kind: blockComment, open: "<!--", close: "-->"},
	"xml":      {kind: blockComment, open: "<!--", close: "-->"},
	"vue":      {kind: blockComment, open: "<!--", close: "-->"},
	"svelte":   {kind: blockComment, open: "<!--", close: "-->"},
	"markdown": {kind: blockComment, open: "<!--", close: "-->"},
}

// Supported reports whether a comment grammar is registered for language.
func Supported(language string) bool {
	_, ok := grammars[language]
	return ok
}

// grammarFor resolves the comment grammar for language, rejecting unknown
// tags explicitly rather than defaulting.
func grammarFor(language string) (grammar, error) {
	g, ok := grammars[language]
	if !ok {
		return grammar{}, &UnsupportedLanguageError{Language: language}
	}
	return g, nil
}
