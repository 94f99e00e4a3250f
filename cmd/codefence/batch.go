// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/codefence/internal/batch"
	"github.com/pdiddy/codefence/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Extract code blocks from every Markdown file under a directory",
	Long: `Batch walks dir (default: the current directory), selects documents with
doublestar patterns, and extracts each one as the root command would with no
--output or --block: every matching block goes to its own numbered file next
to its document. Documents are processed one at a time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("language", "l", types.DefaultLanguage, "language label of the code blocks to extract")
	batchCmd.Flags().StringSlice("pattern", batch.DefaultIncludes, "doublestar pattern selecting documents (repeatable)")
	batchCmd.Flags().StringSlice("exclude", nil, "doublestar pattern of paths to skip (repeatable)")
	batchCmd.Flags().Bool("dry-run", false, "print each output plan without writing files")
	batchCmd.Flags().Bool("no-progress", false, "disable the progress bar")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	includes, _ := cmd.Flags().GetStringSlice("pattern")
	excludes, _ := cmd.Flags().GetStringSlice("exclude")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	cfg := types.BatchConfig{
		Root:       root,
		Includes:   includes,
		Excludes:   excludes,
		Language:   languageFlag(cmd),
		Extensions: viper.GetStringMapString("extensions"),
		DryRun:     dryRun,
		Progress:   !noProgress,
	}

	result, err := batch.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%w: %d document(s) failed extraction", errReported, result.Failed)
	}
	return nil
}
