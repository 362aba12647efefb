package config

// defaultFormatters is the built-in formatter table, consulted when no
// configured formatter claims a parser. Commands are resolved through PATH
// at invocation time.
var defaultFormatters = []FormatterConfig{
	{
		Command: "gofmt",
		Parsers: []string{"go"},
	},
	{
		Command: "prettier",
		Args:    []string{"--stdin-filepath", "{path}"},
		RangeArgs: []string{
			"--range-start", "{rangeStart}",
			"--range-end", "{rangeEnd}",
		},
		Parsers: []string{
			"javascript", "typescript", "jsx", "tsx",
			"css", "scss", "less",
			"json", "yaml", "markdown", "html", "vue",
		},
	},
	{
		Command: "rustfmt",
		Args:    []string{"--emit", "stdout"},
		Parsers: []string{"rust"},
	},
	{
		Command: "shfmt",
		Args:    []string{"--filename", "{path}"},
		Parsers: []string{"bash", "shell"},
	},
}

func defaultFormatterFor(parser string) (FormatterConfig, bool) {
	for _, f := range defaultFormatters {
		for _, p := range f.Parsers {
			if p == parser {
				return f, true
			}
		}
	}
	return FormatterConfig{}, false
}
