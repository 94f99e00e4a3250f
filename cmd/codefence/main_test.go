// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guide = "# Guide\n\n```python\nprint(1)\n```\n\n```python\nprint(2)\n```\n"

// execute runs the root command with args and returns what it printed to
// its out writer.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores the flags of cmd and its subcommands to their defaults
// so each run starts from a clean command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var def []string
			if d := strings.Trim(f.DefValue, "[]"); d != "" {
				def = strings.Split(d, ",")
			}
			_ = sv.Replace(def)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func setupGuide(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guide.md")
	require.NoError(t, os.WriteFile(path, []byte(guide), 0o644))
	return path
}

func TestExtract_AllBlocks(t *testing.T) {
	input := setupGuide(t)
	dir := filepath.Dir(input)

	out, err := execute(t, "--input", input, "--language", "python")
	require.NoError(t, err)

	first := filepath.Join(dir, "extracted_guide_python_block_1.py")
	second := filepath.Join(dir, "extracted_guide_python_block_2.py")
	assert.Equal(t, "Found 2 python code blocks:\n  Block 1 extracted to "+first+"\n  Block 2 extracted to "+second+"\n", out)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "print(2)", string(data))
}

func TestExtract_SingleBlockShortFlags(t *testing.T) {
	input := setupGuide(t)
	target := filepath.Join(filepath.Dir(input), "two.py")

	out, err := execute(t, "-i", input, "-l", "python", "-b", "2", "-o", target)
	require.NoError(t, err)
	assert.Equal(t, "python code block 2 extracted to "+target+"\n", out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "print(2)", string(data))
}

func TestExtract_BlockZeroIsOutOfRange(t *testing.T) {
	input := setupGuide(t)

	out, err := execute(t, "-i", input, "-l", "python", "-b", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Error: Block number 0 is out of range. Found 2 blocks.")
	assert.Contains(t, out, "Failed to extract python code blocks\n")
}

func TestExtract_NoBlocksIsNotAnError(t *testing.T) {
	input := setupGuide(t)

	out, err := execute(t, "-i", input, "-l", "ruby")
	require.NoError(t, err)
	assert.Equal(t, "No ruby code blocks found in "+input+"\n", out)
}

func TestExtract_MissingInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "missing.md")

	out, err := execute(t, "-i", input)
	require.Error(t, err)
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "Error: File '"+input+"' not found.\n", out)
}

func TestExtract_InputRequired(t *testing.T) {
	_, err := execute(t, "-l", "python")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errReported)
	assert.Contains(t, err.Error(), "input")
}

func TestExtract_DefaultLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.md")
	require.NoError(t, os.WriteFile(path, []byte("```javascript\nconsole.log(1)\n```\n"), 0o644))

	out, err := execute(t, "-i", path)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(filepath.Dir(path), "extracted_web_javascript_block_1.ts"))
}

func TestExtract_ConfigFile(t *testing.T) {
	input := setupGuide(t)
	cfgPath := filepath.Join(t.TempDir(), "codefence.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: python\nextensions:\n  python: py3\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "-i", input, "-b", "1")
	require.NoError(t, err)

	target := filepath.Join(filepath.Dir(input), "extracted_guide_python.py3")
	assert.Equal(t, "python code block 1 extracted to "+target+"\n", out)
}

func TestExtract_EnvLanguage(t *testing.T) {
	input := setupGuide(t)
	t.Setenv("CODEFENCE_LANGUAGE", "python")

	out, err := execute(t, "-i", input, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Planned 2 python code blocks:")
}

func TestLanguages(t *testing.T) {
	out, err := execute(t, "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "dotnet        cs\n")
	assert.Contains(t, out, "javascript    ts\n")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "codefence dev\n", out)
}

func TestBatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "guide.md"), []byte(guide), 0o644))

	out, err := execute(t, "batch", root, "-l", "python", "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Batch summary: 1 extracted, 0 without python blocks, 0 failed (total: 1)")

	_, err = os.Stat(filepath.Join(root, "docs", "extracted_guide_python_block_2.py"))
	assert.NoError(t, err)
}

func TestBatch_FlagsResetBetweenRuns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "guide.md"), []byte(guide), 0o644))

	_, err := execute(t, "batch", root, "-l", "python", "--no-progress", "--dry-run",
		"--pattern", "*.txt", "--exclude", "guide.md")
	require.NoError(t, err)

	resetFlags(rootCmd)

	noProgress, _ := batchCmd.Flags().GetBool("no-progress")
	dryRun, _ := batchCmd.Flags().GetBool("dry-run")
	patterns, _ := batchCmd.Flags().GetStringSlice("pattern")
	excludes, _ := batchCmd.Flags().GetStringSlice("exclude")
	assert.False(t, noProgress)
	assert.False(t, dryRun)
	assert.Equal(t, []string{"**/*.md"}, patterns)
	assert.Empty(t, excludes)
	assert.False(t, batchCmd.Flags().Changed("language"))

	out, err := execute(t, "batch", root, "-l", "python", "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Batch summary: 1 extracted, 0 without python blocks, 0 failed (total: 1)")
}
