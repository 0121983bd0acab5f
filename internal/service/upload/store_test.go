package upload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kebele-gov/intake-agent/backend/internal/service/upload"
)

func TestSaveWritesFiles(t *testing.T) {
	store := upload.NewStore(t.TempDir())

	saved, err := store.Save("citizen-1", []upload.File{
		{Name: "residence.pdf", Content: strings.NewReader("letter")},
		{Name: "parent-id.png", Content: strings.NewReader("scan")},
	})
	if err != nil {
		t.Fatalf("Save err: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d files, want 2", len(saved))
	}

	content, err := os.ReadFile(saved[0])
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(content) != "letter" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestSaveKeepsNamesInsideBase(t *testing.T) {
	base := t.TempDir()
	store := upload.NewStore(base)

	saved, err := store.Save("../escape", []upload.File{
		{Name: "../../etc/passwd", Content: strings.NewReader("nope")},
	})
	if err != nil {
		t.Fatalf("Save err: %v", err)
	}
	for _, path := range saved {
		rel, err := filepath.Rel(base, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			t.Fatalf("file escaped base dir: %s", path)
		}
	}
}

func TestSaveSkipsNilContent(t *testing.T) {
	store := upload.NewStore(t.TempDir())

	saved, err := store.Save("citizen-2", []upload.File{{Name: "empty.pdf"}})
	if err != nil {
		t.Fatalf("Save err: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("saved %d files, want 0", len(saved))
	}
}
