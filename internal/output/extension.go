// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"path/filepath"
	"sort"
	"strings"
)

// extensions is the built-in fence label to file extension table.
// Documentation snippets labelled javascript are written as TypeScript.
var extensions = map[string]string{
	"javascript": "ts",
	"python":     "py",
	"java":       "java",
	"typescript": "ts",
	"dotnet":     "cs",
}

// Extension returns the file extension (without the dot) for language.
// Overrides take precedence over the built-in table; a label found in
// neither is used as its own extension.
func Extension(language string, overrides map[string]string) string {
	if ext, ok := overrides[language]; ok && ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	if ext, ok := extensions[language]; ok {
		return ext
	}
	return language
}

// ExtensionTable returns the built-in table merged with overrides, as
// label/extension pairs sorted by label.
func ExtensionTable(overrides map[string]string) [][2]string {
	merged := make(map[string]string, len(extensions)+len(overrides))
	for k, v := range extensions {
		merged[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			merged[k] = strings.TrimPrefix(v, ".")
		}
	}

	labels := make([]string, 0, len(merged))
	for k := range merged {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	table := make([][2]string, len(labels))
	for i, l := range labels {
		table[i] = [2]string{l, merged[l]}
	}
	return table
}

// DefaultPath derives the output path for input and language:
// <dir>/extracted_<name>_<language>.<ext>, where name is the input's base
// name without its extension.
func DefaultPath(input, language string, overrides map[string]string) string {
	name, _ := splitExt(filepath.Base(input))
	file := "extracted_" + name + "_" + language + "." + Extension(language, overrides)
	return filepath.Join(filepath.Dir(input), file)
}
