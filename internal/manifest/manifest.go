// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records the files produced by an extraction run.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/codefence/pkg/types"
)

// Manifest is the on-disk record of one extraction run.
type Manifest struct {
	Input     string               `json:"input" yaml:"input"`
	Language  string               `json:"language" yaml:"language"`
	Mode      types.WriteMode      `json:"mode" yaml:"mode"`
	Blocks    int                  `json:"blocks_found" yaml:"blocks_found"`
	Written   []types.WrittenBlock `json:"written" yaml:"written"`
	Failed    []types.BlockFailure `json:"failed,omitempty" yaml:"failed,omitempty"`
	Timestamp time.Time            `json:"timestamp" yaml:"timestamp"`
}

// New builds a manifest for a completed write.
func New(cfg types.ExtractConfig, found int, result types.WriteResult) Manifest {
	return Manifest{
		Input:     cfg.Input,
		Language:  cfg.Language,
		Mode:      result.Mode,
		Blocks:    found,
		Written:   result.Files(),
		Failed:    result.Failed,
		Timestamp: time.Now().UTC(),
	}
}

// Write saves m to path as JSON when path ends in .json and as YAML
// otherwise. Missing parent directories are created.
func Write(path string, m Manifest) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
	} else {
		data, err = yaml.Marshal(&m)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a manifest written by Write.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &m)
	} else {
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
