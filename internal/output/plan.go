// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/codefence/pkg/types"
)

// ErrBlockRange is wrapped by RangeError.
var ErrBlockRange = errors.New("block number out of range")

// RangeError reports a requested block index outside [1, Available].
type RangeError struct {
	Requested int
	Available int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("block number %d is out of range: found %d blocks", e.Requested, e.Available)
}

func (e *RangeError) Unwrap() error { return ErrBlockRange }

// Plan maps each of count blocks to BlockPath(base, i).
func Plan(count int, base string) types.OutputPlan {
	plan := types.OutputPlan{
		Mode:    types.ModeAll,
		Entries: make([]types.PlanEntry, count),
	}
	for i := 0; i < count; i++ {
		plan.Entries[i] = types.PlanEntry{Block: i + 1, Path: BlockPath(base, i+1)}
	}
	return plan
}

// PlanSingle maps block n of count to path unchanged. It returns a
// *RangeError when n is outside [1, count].
func PlanSingle(count int, path string, n int) (types.OutputPlan, error) {
	if n < 1 || n > count {
		return types.OutputPlan{}, &RangeError{Requested: n, Available: count}
	}
	return types.OutputPlan{
		Mode:    types.ModeSingle,
		Entries: []types.PlanEntry{{Block: n, Path: path}},
	}, nil
}

// BlockPath inserts "_block_<n>" between the stem and extension of base.
func BlockPath(base string, n int) string {
	stem, ext := splitExt(base)
	return fmt.Sprintf("%s_block_%d%s", stem, n, ext)
}

// splitExt splits path into stem and extension. Leading dots of the base
// name do not start an extension, so ".env" has none.
func splitExt(path string) (stem, ext string) {
	ext = filepath.Ext(path)
	if ext == "" {
		return path, ""
	}
	name := filepath.Base(path)
	if !strings.Contains(strings.TrimLeft(name, "."), ".") {
		return path, ""
	}
	return strings.TrimSuffix(path, ext), ext
}
