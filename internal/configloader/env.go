package configloader

import (
	"os"
	"strings"

	"github.com/yaklabco/gitfmt/pkg/config"
)

// envVarPrefix is the prefix for all gitfmt environment variables.
const envVarPrefix = "GITFMT_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GITFMT_ (e.g., GITFMT_BASE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "BASE"); v != "" {
		cfg.Base = v
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = parseSliceValue(v)
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace; empty elements are dropped.
func parseSliceValue(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
