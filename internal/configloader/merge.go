package configloader

import "github.com/yaklabco/gitfmt/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: override can only set, not unset
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Base != "" {
		result.Base = override.Base
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.Formatters != nil {
		result.Formatters = override.Formatters
	}

	// Booleans are tricky because false is the zero value: --write can
	// override, but a lower layer cannot unset it.
	if override.Write {
		result.Write = true
	}
	if override.Staged {
		result.Staged = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
