// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output plans and writes extracted code blocks to files.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/codefence/pkg/types"
)

// WriteBlock writes block, trimmed of leading and trailing whitespace, to
// path. Missing parent directories are created. An existing file is
// overwritten.
func WriteBlock(block, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(block)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Execute writes blocks according to plan. Each entry is attempted once, in
// plan order; a failed entry is printed to w and recorded in Failed without
// stopping the rest.
func Execute(blocks []string, plan types.OutputPlan, w io.Writer) types.WriteResult {
	result := types.WriteResult{Mode: plan.Mode}

	for _, e := range plan.Entries {
		err := WriteBlock(blocks[e.Block-1], e.Path)
		if err != nil {
			fmt.Fprintf(w, "Error writing to output file: %v\n", err)
			result.Failed = append(result.Failed, types.BlockFailure{Block: e.Block, Path: e.Path, Err: err.Error()})
		}

		if plan.Mode == types.ModeSingle {
			result.Block = e.Block
			result.Path = e.Path
			result.OK = err == nil
			continue
		}
		if err == nil {
			result.Written = append(result.Written, types.WrittenBlock{Block: e.Block, Path: e.Path})
		}
	}

	return result
}
