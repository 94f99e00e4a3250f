// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the single-document extraction over every Markdown
// document under a directory. Documents are processed one at a time, in
// lexical path order, each with its default output path.
package batch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"

	"github.com/pdiddy/codefence/internal/logger"
	"github.com/pdiddy/codefence/internal/pipeline"
	"github.com/pdiddy/codefence/pkg/types"
)

// DefaultIncludes selects Markdown documents at any depth.
var DefaultIncludes = []string{"**/*.md"}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Empty     int
	Failed    int
}

// Total returns the number of documents processed.
func (r Result) Total() int {
	return r.Extracted + r.Empty + r.Failed
}

// HasFailures reports whether any document failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Discover returns the files under root whose slash-separated relative
// path matches an include pattern and no exclude pattern. Directories
// matching an exclude pattern (with a trailing slash) are not descended.
func Discover(root string, includes, excludes []string) ([]string, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	for _, p := range append(append([]string{}, includes...), excludes...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
	}

	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && matchAny(excludes, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if matchAny(includes, rel) && !matchAny(excludes, rel) {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(docs)
	return docs, nil
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Run extracts cfg.Language blocks from every document Discover finds.
// Status lines go to w; when cfg.Progress is set a progress bar is drawn on
// progress.
func Run(cfg types.BatchConfig, w, progress io.Writer) (Result, error) {
	docs, err := Discover(cfg.Root, cfg.Includes, cfg.Excludes)
	if err != nil {
		return Result{}, err
	}
	if len(docs) == 0 {
		fmt.Fprintf(w, "No documents matched in %s\n", cfg.Root)
		return Result{}, nil
	}
	logger.Debug("discovered %d documents under %s", len(docs), cfg.Root)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.NewOptions(len(docs),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("Extracting"),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	var result Result
	for _, doc := range docs {
		_, err := pipeline.Run(types.ExtractConfig{
			Input:      doc,
			Language:   cfg.Language,
			Extensions: cfg.Extensions,
			DryRun:     cfg.DryRun,
		}, w)
		switch {
		case err == nil:
			result.Extracted++
		case errors.Is(err, pipeline.ErrNoBlocks):
			result.Empty++
		default:
			logger.Warn("%s: %v", doc, err)
			result.Failed++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d without %s blocks, %d failed (total: %d)\n",
		result.Extracted, result.Empty, cfg.Language, result.Failed, result.Total())
	return result, nil
}
