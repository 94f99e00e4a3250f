// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the extraction stages.
package types

// WriteMode selects whether one block or every block is written.
type WriteMode string

const (
	ModeSingle WriteMode = "single"
	ModeAll    WriteMode = "all"
)

// PlanEntry maps a 1-based block index to its destination path.
type PlanEntry struct {
	Block int    `json:"block" yaml:"block"`
	Path  string `json:"path" yaml:"path"`
}

// OutputPlan is the mapping from block index to destination file, computed
// before any write occurs. Entries are in block order.
type OutputPlan struct {
	Mode    WriteMode   `json:"mode" yaml:"mode"`
	Entries []PlanEntry `json:"entries" yaml:"entries"`
}

// WrittenBlock records a block that was written successfully.
type WrittenBlock struct {
	Block int    `json:"block" yaml:"block"`
	Path  string `json:"path" yaml:"path"`
}

// BlockFailure records a block whose write failed.
type BlockFailure struct {
	Block int    `json:"block" yaml:"block"`
	Path  string `json:"path" yaml:"path"`
	Err   string `json:"error" yaml:"error"`
}

// WriteResult is the outcome of a write. Mode tells the caller which fields
// are meaningful: Block, Path and OK for ModeSingle; Written for ModeAll.
// Failed lists failed writes in either mode.
type WriteResult struct {
	Mode WriteMode `json:"mode" yaml:"mode"`

	Block int    `json:"block,omitempty" yaml:"block,omitempty"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	OK    bool   `json:"ok" yaml:"ok"`

	Written []WrittenBlock `json:"written,omitempty" yaml:"written,omitempty"`
	Failed  []BlockFailure `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// HasFailures reports whether any requested write did not complete.
func (r WriteResult) HasFailures() bool {
	if r.Mode == ModeSingle {
		return !r.OK
	}
	return len(r.Failed) > 0
}

// Files returns the written block-to-path mapping in block order. In single
// mode it holds at most one entry.
func (r WriteResult) Files() []WrittenBlock {
	if r.Mode == ModeSingle {
		if !r.OK {
			return nil
		}
		return []WrittenBlock{{Block: r.Block, Path: r.Path}}
	}
	return r.Written
}
