// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultLanguage is the fence label used when none is given.
const DefaultLanguage = "javascript"

// ExtractConfig holds settings for a single-document extraction run.
type ExtractConfig struct {
	// Input is the path to the source Markdown document.
	Input string `json:"input" yaml:"input"`

	// Output is the output file path (single mode) or base path (all mode).
	// Empty means derive it from Input and Language.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Language is the fence label to match, e.g. "python".
	Language string `json:"language" yaml:"language"`

	// Block is the 1-based index of a single block to extract. Nil selects
	// all blocks.
	Block *int `json:"block,omitempty" yaml:"block,omitempty"`

	// Extensions overrides entries of the built-in language-to-extension
	// table. Keys are fence labels, values are extensions without the dot.
	Extensions map[string]string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// DryRun prints the output plan without writing any file.
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	// Manifest, when set, is the path of a YAML or JSON record of the run.
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// BlockRequested reports whether a specific block was selected.
func (c ExtractConfig) BlockRequested() bool {
	return c.Block != nil
}

// BatchConfig holds settings for extracting from every matching document
// under a directory.
type BatchConfig struct {
	// Root is the directory to walk.
	Root string `json:"root" yaml:"root"`

	// Includes are doublestar patterns, relative to Root, selecting documents
	// (default "**/*.md").
	Includes []string `json:"includes" yaml:"includes"`

	// Excludes are doublestar patterns, relative to Root, to skip.
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`

	// Language is the fence label to match.
	Language string `json:"language" yaml:"language"`

	// Extensions overrides the built-in extension table.
	Extensions map[string]string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// DryRun prints each document's plan without writing.
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	// Progress enables the progress bar.
	Progress bool `json:"progress" yaml:"progress"`
}
