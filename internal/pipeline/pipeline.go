// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a single-document extraction: read the document,
// extract the fenced blocks for a language, plan the output paths, write,
// and print a summary.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/codefence/internal/document"
	"github.com/pdiddy/codefence/internal/fence"
	"github.com/pdiddy/codefence/internal/logger"
	"github.com/pdiddy/codefence/internal/manifest"
	"github.com/pdiddy/codefence/internal/output"
	"github.com/pdiddy/codefence/pkg/types"
)

var (
	// ErrNoBlocks is returned when the document has no blocks for the
	// language. It is informational: nothing was written and nothing failed.
	ErrNoBlocks = errors.New("no code blocks found")

	// ErrWriteFailed is returned when at least one planned write failed.
	ErrWriteFailed = errors.New("writing code blocks")
)

// Summary describes what a run found, planned, and wrote.
type Summary struct {
	Found  int
	Plan   types.OutputPlan
	Result types.WriteResult
}

// Resolve fills in the default language and output path of cfg.
func Resolve(cfg types.ExtractConfig) types.ExtractConfig {
	if cfg.Language == "" {
		cfg.Language = types.DefaultLanguage
	}
	if cfg.Output == "" {
		cfg.Output = output.DefaultPath(cfg.Input, cfg.Language, cfg.Extensions)
	}
	return cfg
}

// Run extracts the code blocks described by cfg, printing status lines and
// diagnostics to w. Every failure is printed before it is returned, so
// callers only need the error to choose an exit status.
func Run(cfg types.ExtractConfig, w io.Writer) (Summary, error) {
	cfg = Resolve(cfg)
	var s Summary

	content, err := document.Read(cfg.Input)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			fmt.Fprintf(w, "Error: File '%s' not found.\n", cfg.Input)
		} else {
			fmt.Fprintf(w, "Error reading file: %v\n", err)
		}
		return s, err
	}
	logger.Debug("read %d bytes from %s", len(content), cfg.Input)

	blocks := fence.Extract(content, cfg.Language)
	s.Found = len(blocks)
	if len(blocks) == 0 {
		fmt.Fprintf(w, "No %s code blocks found in %s\n", cfg.Language, cfg.Input)
		return s, ErrNoBlocks
	}
	logger.Debug("found %d %s blocks", len(blocks), cfg.Language)

	s.Plan, err = plan(cfg, len(blocks))
	if err != nil {
		var re *output.RangeError
		if errors.As(err, &re) {
			fmt.Fprintf(w, "Error: Block number %d is out of range. Found %d blocks.\n", re.Requested, re.Available)
		}
		reportFailure(w, cfg)
		return s, err
	}

	if cfg.DryRun {
		fmt.Fprintf(w, "Planned %d %s code blocks:\n", len(s.Plan.Entries), cfg.Language)
		for _, e := range s.Plan.Entries {
			fmt.Fprintf(w, "  Block %d -> %s\n", e.Block, e.Path)
		}
		return s, nil
	}

	s.Result = output.Execute(blocks, s.Plan, w)
	report(w, cfg, s.Result)

	if cfg.Manifest != "" {
		if err := manifest.Write(cfg.Manifest, manifest.New(cfg, s.Found, s.Result)); err != nil {
			fmt.Fprintf(w, "Error writing manifest: %v\n", err)
			return s, err
		}
		logger.Debug("manifest written to %s", cfg.Manifest)
	}

	if s.Result.HasFailures() {
		return s, ErrWriteFailed
	}
	return s, nil
}

func plan(cfg types.ExtractConfig, count int) (types.OutputPlan, error) {
	if cfg.BlockRequested() {
		return output.PlanSingle(count, cfg.Output, *cfg.Block)
	}
	return output.Plan(count, cfg.Output), nil
}

// report prints the outcome of a write.
func report(w io.Writer, cfg types.ExtractConfig, r types.WriteResult) {
	switch {
	case r.Mode == types.ModeAll && len(r.Written) > 0:
		fmt.Fprintf(w, "Found %d %s code blocks:\n", len(r.Written), cfg.Language)
		for _, wb := range r.Written {
			fmt.Fprintf(w, "  Block %d extracted to %s\n", wb.Block, wb.Path)
		}
	case r.Mode == types.ModeSingle && r.OK:
		fmt.Fprintf(w, "%s code block %d extracted to %s\n", cfg.Language, r.Block, r.Path)
	default:
		reportFailure(w, cfg)
	}
}

// reportFailure names the block when a non-zero one was requested.
func reportFailure(w io.Writer, cfg types.ExtractConfig) {
	if cfg.BlockRequested() && *cfg.Block != 0 {
		fmt.Fprintf(w, "Failed to extract %s code block %d\n", cfg.Language, *cfg.Block)
		return
	}
	fmt.Fprintf(w, "Failed to extract %s code blocks\n", cfg.Language)
}
