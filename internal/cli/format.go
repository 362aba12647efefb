package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gitfmt/internal/configloader"
	"github.com/yaklabco/gitfmt/internal/logging"
	"github.com/yaklabco/gitfmt/pkg/config"
	"github.com/yaklabco/gitfmt/pkg/engine"
	"github.com/yaklabco/gitfmt/pkg/format"
	"github.com/yaklabco/gitfmt/pkg/gitdiff"
	"github.com/yaklabco/gitfmt/pkg/marker"
	"github.com/yaklabco/gitfmt/pkg/reporter"
	"github.com/yaklabco/gitfmt/pkg/runner"
)

type formatFlags struct {
	write  bool
	staged bool
	base   string
	ignore []string
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:     "format [paths...]",
		Aliases: []string{"fmt"},
		Short:   "Format changed regions of files",
		Long:    formatLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "apply formatting to files (default is check mode)")
	cmd.Flags().BoolVar(&flags.staged, "staged", false, "only process files with staged changes")
	cmd.Flags().StringVar(&flags.base, "base", "", "revision to diff against (default HEAD)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")

	return cmd
}

const formatLongDescription = `Format the version-control-changed regions of files.

By default, checks every file git reports as changed against the base
revision and exits non-zero when any changed region needs formatting.
Specify paths to restrict the run to specific files or directories.

Examples:
  gitfmt format                  # Check changed files
  gitfmt format -w               # Rewrite changed regions in place
  gitfmt format -w --staged      # Only files staged in the index
  gitfmt format --base main      # Diff against a branch instead of HEAD
  gitfmt format -w src/          # Restrict to one directory`

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg := &config.Config{
		Base:   flags.base,
		Ignore: flags.ignore,
		Write:  flags.write,
		Staged: flags.staged,
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldBase, finalCfg.BaseRef(),
		logging.FieldWrite, finalCfg.Write,
		logging.FieldStaged, finalCfg.Staged,
	)

	repo, err := gitdiff.Open(workDir)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep := reporter.NewText(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Color:      colorMode,
		WorkingDir: repo.Root(),
	})

	formatter := format.NewFormatter(engine.NewCommand(finalCfg), rep, format.Config{
		Write: finalCfg.Write,
		UID:   marker.NewUID(),
	})

	run := runner.New(repo, formatter, rep)

	result, err := run.Run(ctx, runner.Options{
		Paths:  args,
		Staged: finalCfg.Staged,
		Write:  finalCfg.Write,
		Config: finalCfg,
	})
	if err != nil {
		return errors.Join(errors.New("formatting run aborted"), err)
	}

	rep.Summary(result, finalCfg.Write)

	switch {
	case result.HasErrors():
		return ErrRunFailed
	case !finalCfg.Write && result.NeedsFormatting():
		return ErrNeedsFormatting
	default:
		return nil
	}
}
