// Package storage provides the file-backed persistence boundary: one JSON
// collection per store, always replaced whole. Loads are tolerant - elements
// that fail to parse are dropped silently and the valid subset survives.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// loadCollection reads a JSON array file and decodes it element-wise.
// Malformed elements are skipped; a missing file or a file that is not an
// array at all yields an empty collection rather than an error. The engine
// degrades to empty state, it never halts on bad input.
func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil
	}

	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// saveCollection writes the full collection atomically: marshal, write to a
// temp file in the same directory, rename over the target. A failed write
// never corrupts the previous file contents.
func saveCollection[T any](path string, items []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("saving %s: creating directory: %w", filepath.Base(path), err)
	}

	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("saving %s: marshaling: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("saving %s: writing: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("saving %s: replacing: %w", filepath.Base(path), err)
	}
	return nil
}
