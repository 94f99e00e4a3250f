// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.md")
	require.NoError(t, os.WriteFile(path, []byte("# Guide\n\n```python\nprint(1)\n```\n"), 0o644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "# Guide\n\n```python\nprint(1)\n```\n", got)
}

func TestRead_LineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"crlf", "```python\r\nprint(1)\r\n```\r\n", "```python\nprint(1)\n```\n"},
		{"lone cr", "```python\rprint(1)\r```", "```python\nprint(1)\n```"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.md")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.md")
			},
			wantErr: ErrNotFound,
		},
		{
			name: "directory instead of file",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr: ErrIO,
		},
		{
			name: "invalid utf-8",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "latin1.md")
				require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'a'}, 0o644))
				return path
			},
			wantErr: ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.setup(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
