package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gitfmt/internal/configloader"
	"github.com/yaklabco/gitfmt/internal/logging"
)

func newInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gitfmt configuration file",
		Long: `Create a new .gitfmt.yaml configuration file in the current directory
with a commented starter template. The file can be customized to pick the
base revision, ignore files, and register external formatters.

Examples:
  gitfmt init                    Create .gitfmt.yaml
  gitfmt init -o custom.yaml     Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".gitfmt.yaml", "output file path")

	return cmd
}

func runInit(output string) error {
	logger := logging.Default()

	absPath, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := configloader.WriteStarterConfig(absPath); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, output)
	logger.Info("run 'gitfmt format' to check your changed files")

	return nil
}
