// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the codefence CLI, which extracts
// fenced code blocks of one language from Markdown documents into files.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/codefence/internal/logger"
	"github.com/pdiddy/codefence/internal/pipeline"
	"github.com/pdiddy/codefence/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported marks failures whose diagnostic has already been printed.
var errReported = errors.New("reported")

// rootCmd extracts code blocks from a single document.
var rootCmd = &cobra.Command{
	Use:   "codefence",
	Short: "Extract fenced code blocks from Markdown files",
	Long: `codefence extracts the fenced code blocks tagged with a language label
from a Markdown document and writes them to files.

Without --block every matching block is written to its own numbered file
(<output stem>_block_<n><ext>). With --block only that block is written,
to the output path itself. The default output path is
<input dir>/extracted_<input name>_<language>.<ext>.

The label is matched literally right after the opening fence, so a label
that is a prefix of another ("java" and "javascript") matches both.

Example usage:
  codefence -i docs/guide.md -l python
  codefence -i docs/guide.md -l python -b 2 -o snippets/second.py`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./codefence.yaml or ~/.config/codefence/codefence.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print debug output to stderr")

	rootCmd.Flags().StringP("input", "i", "", "input Markdown file path")
	rootCmd.Flags().StringP("output", "o", "", "output file path (default: extracted_<name>_<language>[_block_<n>].<ext> next to the input)")
	rootCmd.Flags().StringP("language", "l", types.DefaultLanguage, "language label of the code blocks to extract")
	rootCmd.Flags().IntP("block", "b", 0, "specific block number to extract (1-indexed)")
	rootCmd.Flags().Bool("dry-run", false, "print the output plan without writing files")
	rootCmd.Flags().String("manifest", "", "write a YAML (or .json) record of the files written")
	_ = rootCmd.MarkFlagRequired("input")

	viper.SetDefault("language", types.DefaultLanguage)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("codefence")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "codefence"))
		}
	}

	viper.SetEnvPrefix("CODEFENCE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// languageFlag returns the --language flag when it was given, otherwise the
// configured default.
func languageFlag(cmd *cobra.Command) string {
	if cmd.Flags().Changed("language") {
		lang, _ := cmd.Flags().GetString("language")
		return lang
	}
	if lang := viper.GetString("language"); lang != "" {
		return lang
	}
	return types.DefaultLanguage
}

func runExtract(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	out, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	manifestPath, _ := cmd.Flags().GetString("manifest")

	cfg := types.ExtractConfig{
		Input:      input,
		Output:     out,
		Language:   languageFlag(cmd),
		Extensions: viper.GetStringMapString("extensions"),
		DryRun:     dryRun,
		Manifest:   manifestPath,
	}
	if cmd.Flags().Changed("block") {
		block, _ := cmd.Flags().GetInt("block")
		cfg.Block = &block
	}

	_, err := pipeline.Run(cfg, cmd.OutOrStdout())
	if err == nil || errors.Is(err, pipeline.ErrNoBlocks) {
		return nil
	}
	return fmt.Errorf("%w: %w", errReported, err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
