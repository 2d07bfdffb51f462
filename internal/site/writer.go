package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter receives the generated documents. The generator itself never
// touches the filesystem directly, which keeps page assembly testable
// without a temp dir.
type FileWriter interface {
	// WriteFile stores content at relPath below the site root, creating
	// parent directories as needed.
	WriteFile(relPath string, content []byte) error
}

// FSWriter writes documents under a root directory.
type FSWriter struct {
	Root string
}

func (w *FSWriter) WriteFile(relPath string, content []byte) error {
	dest := filepath.Join(w.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// MemWriter collects documents in memory. Test double.
type MemWriter struct {
	Files map[string][]byte
}

func (w *MemWriter) WriteFile(relPath string, content []byte) error {
	if w.Files == nil {
		w.Files = make(map[string][]byte)
	}
	w.Files[relPath] = content
	return nil
}
