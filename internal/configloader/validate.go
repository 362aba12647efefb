package configloader

import (
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/gitfmt/pkg/config"
)

// ValidationError describes a configuration problem that prevents a run.
type ValidationError struct {
	// Field is the configuration field the problem was found in.
	Field string

	// Message describes the problem.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// ValidationWarning describes a suspicious but tolerable configuration value.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidationResult collects the outcome of validating a configuration.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Valid reports whether the configuration has no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a merged configuration for problems.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	for i, f := range cfg.Formatters {
		field := fmt.Sprintf("formatters[%d]", i)

		if f.Command == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".command",
				Message: "command must not be empty",
			})
		}
		if len(f.Parsers) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".parsers",
				Message: "at least one parser is required",
			})
		}
		if len(f.RangeArgs) > 0 && !hasRangePlaceholders(f.RangeArgs) {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   field + ".range_args",
				Message: "range_args has no {rangeStart}/{rangeEnd} placeholders; the same span is sent for every range",
			})
		}
	}

	for i, pattern := range cfg.Ignore {
		if _, err := path.Match(pattern, "probe"); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Message: fmt.Sprintf("bad glob pattern %q: %v", pattern, err),
			})
		}
	}

	return result
}

func hasRangePlaceholders(args []string) bool {
	for _, arg := range args {
		if strings.Contains(arg, "{rangeStart}") || strings.Contains(arg, "{rangeEnd}") {
			return true
		}
	}
	return false
}
