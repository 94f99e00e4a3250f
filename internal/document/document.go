// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document loads Markdown source documents from disk.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound is returned when the document path does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrIO is returned for any other read failure.
	ErrIO = errors.New("reading document")
)

// Read returns the full text of the document at path with CRLF and lone CR
// line endings converted to LF. A missing file yields an error wrapping
// ErrNotFound; permission problems, directories and content that is not
// valid UTF-8 yield an error wrapping ErrIO.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrIO, path)
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
