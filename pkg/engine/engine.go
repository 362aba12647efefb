// Package engine implements format.Engine by invoking external formatter
// commands. Text travels over stdin/stdout; the file path is only a hint
// that selects the formatter and its rules.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/yaklabco/gitfmt/pkg/config"
	"github.com/yaklabco/gitfmt/pkg/format"
	"github.com/yaklabco/gitfmt/pkg/langdetect"
)

// ErrNoFormatter indicates no configured or built-in formatter claims the
// file's parser.
var ErrNoFormatter = errors.New("no formatter configured for parser")

// detectLimit bounds how much file content FileInfo reads for language
// detection. Shebangs and classifier signals live near the top.
const detectLimit = 16 * 1024

// Command runs configured formatter executables.
type Command struct {
	cfg *config.Config
}

// NewCommand creates a Command engine over cfg. A nil cfg uses only the
// built-in formatter table.
func NewCommand(cfg *config.Config) *Command {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Command{cfg: cfg}
}

// FileInfo resolves ignore status and the inferred parser for path. A file
// is reported parser-less when detection fails or when no formatter claims
// the detected parser.
func (e *Command) FileInfo(_ context.Context, path string) (format.FileInfo, error) {
	for _, pattern := range e.cfg.Ignore {
		if matchGlob(path, pattern) {
			return format.FileInfo{Ignored: true}, nil
		}
	}

	parser := langdetect.Parser(path, readHead(path))
	if parser == "" {
		return format.FileInfo{}, nil
	}
	if _, ok := e.cfg.FormatterFor(parser); !ok {
		return format.FileInfo{}, nil
	}
	return format.FileInfo{Parser: parser}, nil
}

// SupportsRange reports whether the formatter for parser declares native
// range arguments.
func (e *Command) SupportsRange(parser string) bool {
	f, ok := e.cfg.FormatterFor(parser)
	return ok && f.SupportsRange()
}

// Format runs the whole text through the formatter selected by the path
// hint.
func (e *Command) Format(ctx context.Context, text string, opts format.Options) (string, error) {
	fc, err := e.formatterFor(opts.Path, text)
	if err != nil {
		return "", err
	}
	args := renderArgs(fc.Args, opts.Path, -1, -1)
	return runFormatter(ctx, fc.Command, args, text)
}

// FormatRange formats the half-open character span [start, end). With
// native range support the span is handed to the formatter; otherwise the
// span is formatted as a standalone document and spliced back, keeping
// every byte outside the span untouched.
func (e *Command) FormatRange(ctx context.Context, text string, start, end int, opts format.Options) (string, error) {
	if start < 0 || end > len(text) || start > end {
		return "", fmt.Errorf("format range [%d, %d) out of bounds for %d bytes", start, end, len(text))
	}

	fc, err := e.formatterFor(opts.Path, text)
	if err != nil {
		return "", err
	}

	if fc.SupportsRange() {
		args := renderArgs(fc.Args, opts.Path, start, end)
		args = append(args, renderArgs(fc.RangeArgs, opts.Path, start, end)...)
		return runFormatter(ctx, fc.Command, args, text)
	}

	args := renderArgs(fc.Args, opts.Path, start, end)
	formatted, err := runFormatter(ctx, fc.Command, args, text[start:end])
	if err != nil {
		return "", err
	}
	return text[:start] + formatted + text[end:], nil
}

func (e *Command) formatterFor(path, text string) (config.FormatterConfig, error) {
	parser := langdetect.Parser(path, []byte(text))
	fc, ok := e.cfg.FormatterFor(parser)
	if !ok {
		return config.FormatterConfig{}, fmt.Errorf("%w: %q (%s)", ErrNoFormatter, parser, path)
	}
	return fc, nil
}

// runFormatter executes one formatter invocation, feeding stdin and
// collecting stdout. A non-zero exit surfaces the stderr tail.
func runFormatter(ctx context.Context, command string, args []string, stdin string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", command, err, msg)
		}
		return "", fmt.Errorf("%s: %w", command, err)
	}
	return stdout.String(), nil
}

// readHead returns up to detectLimit bytes of the file, or nil when the
// file cannot be read. Detection then falls back to the path alone.
func readHead(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	buf := make([]byte, detectLimit)
	n, err := f.Read(buf)
	if n <= 0 || (err != nil && n == 0) {
		return nil
	}
	return buf[:n]
}
