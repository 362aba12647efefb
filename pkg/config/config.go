// Package config defines core configuration types for gitfmt.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// FormatterConfig describes how to invoke one external formatter.
type FormatterConfig struct {
	// Command is the executable to run. Text is passed on stdin and the
	// formatted text is read from stdout.
	Command string `yaml:"command"`

	// Args are the command arguments. The placeholder {path} expands to
	// the file path hint.
	Args []string `yaml:"args"`

	// RangeArgs are extra arguments appended when formatting a character
	// span. The placeholders {rangeStart} and {rangeEnd} expand to the
	// half-open span bounds. Empty means the formatter has no native
	// range support and the marker strategy is preferred.
	RangeArgs []string `yaml:"range_args"`

	// Parsers lists the parser ids this formatter handles.
	Parsers []string `yaml:"parsers"`
}

// SupportsRange reports whether the formatter declares native range
// arguments.
func (f FormatterConfig) SupportsRange() bool {
	return len(f.RangeArgs) > 0
}

// Config is the root configuration structure for gitfmt.
type Config struct {
	// Base is the git revision changed lines are computed against.
	// Empty means HEAD.
	Base string `yaml:"base"`

	// Ignore contains glob patterns for files never to format.
	Ignore []string `yaml:"ignore"`

	// Formatters configures external formatter invocations. Later entries
	// never override earlier parsers; the first formatter claiming a
	// parser wins.
	Formatters []FormatterConfig `yaml:"formatters"`

	// CLI-level options (not persisted to config files).

	// Write applies formatting in place. False is check mode.
	Write bool `yaml:"-"`

	// Staged restricts processing to files staged in the index.
	Staged bool `yaml:"-"`
}

// FormatterFor returns the first configured formatter claiming parser,
// falling back to the built-in defaults table.
func (c *Config) FormatterFor(parser string) (FormatterConfig, bool) {
	if c != nil {
		for _, f := range c.Formatters {
			for _, p := range f.Parsers {
				if p == parser {
					return f, true
				}
			}
		}
	}
	return defaultFormatterFor(parser)
}

// BaseRef returns the configured base revision, defaulting to HEAD.
func (c *Config) BaseRef() string {
	if c == nil || c.Base == "" {
		return "HEAD"
	}
	return c.Base
}

// Default returns a configuration with only built-in behavior.
func Default() *Config {
	return &Config{}
}
