// Package upload persists citizen-provided documents on local disk, one
// directory per user.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// File is one attachment received with a turn.
type File struct {
	Name    string
	Content io.Reader
}

// Store writes uploads under baseDir/<userID>/.
type Store struct {
	baseDir string
}

// NewStore returns a Store rooted at baseDir. The directory is created on
// first save, not here.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes each file and returns the saved paths. A collision-free name is
// derived from the original filename plus a short random suffix.
func (s *Store) Save(userID string, files []File) ([]string, error) {
	dir := filepath.Join(s.baseDir, sanitize(userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	saved := make([]string, 0, len(files))
	for _, f := range files {
		if f.Content == nil {
			continue
		}
		name := sanitize(filepath.Base(f.Name))
		if name == "" || name == "." {
			name = "upload"
		}
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		dest := filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, uuid.NewString()[:8], ext))

		out, err := os.Create(dest)
		if err != nil {
			return nil, fmt.Errorf("create upload file: %w", err)
		}
		if _, err := io.Copy(out, f.Content); err != nil {
			out.Close()
			return nil, fmt.Errorf("write upload file: %w", err)
		}
		if err := out.Close(); err != nil {
			return nil, fmt.Errorf("close upload file: %w", err)
		}
		saved = append(saved, dest)
	}
	return saved, nil
}

// sanitize strips path separators so user-controlled names stay inside baseDir.
func sanitize(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return strings.TrimSpace(name)
}
