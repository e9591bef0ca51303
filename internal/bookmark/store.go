// Package bookmark persists the last-read page between runs.
package bookmark

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Bookmark records where the reader left off.
type Bookmark struct {
	Page int `json:"page"`
}

// Load reads a bookmark from disk. Missing files return the zero bookmark.
func Load(path string) (Bookmark, error) {
	var b Bookmark
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return b, nil
		}
		return b, err
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return b, err
	}
	return b, nil
}

// Save writes a bookmark to disk, creating parent directories as needed.
func Save(path string, b Bookmark) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
