package bookmark

import (
	"path/filepath"
	"testing"
)

// TestLoad_MissingFileReturnsZero verifies a fresh data dir starts at page 0.
func TestLoad_MissingFileReturnsZero(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "bookmark.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Page != 0 {
		t.Fatalf("expected page 0, got %d", b.Page)
	}
}

// TestSaveLoad_RoundTrip verifies the bookmark survives a restart.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bookmark.json")

	if err := Save(path, Bookmark{Page: 7}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if b.Page != 7 {
		t.Fatalf("expected page 7, got %d", b.Page)
	}
}
