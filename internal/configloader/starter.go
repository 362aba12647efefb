package configloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// starterConfig is the commented template written by `gitfmt init`.
const starterConfig = `# gitfmt configuration
# See: https://github.com/yaklabco/gitfmt

# Revision changed lines are computed against.
base: HEAD

# Glob patterns for files gitfmt never touches.
ignore:
  - "vendor/*"
  - "*.min.js"

# External formatters. The first formatter claiming a parser wins.
# Built-in defaults cover gofmt, prettier, rustfmt and shfmt.
formatters: []
#  - command: clang-format
#    args: ["--assume-filename", "{path}"]
#    range_args: ["--offset", "{rangeStart}", "--length", "{rangeEnd}"]
#    parsers: [c, cpp]
`

// WriteStarterConfig writes the starter configuration to path. When the
// file already exists and the session is interactive, the user is asked
// before it is overwritten; non-interactive sessions refuse instead.
func WriteStarterConfig(path string) error {
	if fileExists(path) {
		if !isInteractive() {
			return fmt.Errorf("%s already exists", path)
		}
		overwrite, err := promptOverwrite(path)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("%s already exists", path)
		}
	}

	if err := os.WriteFile(path, []byte(starterConfig), configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// promptOverwrite asks the user whether to replace an existing config.
func promptOverwrite(path string) (bool, error) {
	if _, err := fmt.Fprintf(os.Stdout, "%s already exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
