// Package uploads implements the server-side store for clearance-certificate
// files. Files land in a single flat directory under collision-resistant names
// of the form `<unix-timestamp>-<original-filename>`, which is also the shape
// the public /uploads URLs expose.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore writes and resolves uploaded certificate files inside one
// server-controlled directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the storage directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the storage directory, for wiring the static file server.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes the reader's content to a new file named after the current unix
// timestamp and the sanitized original filename, and returns the stored name.
// The stored name is what gets persisted on the application record.
func (s *FileStore) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().Unix(), sanitizeFilename(originalName))

	out, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		// Same name uploaded twice in the same second; disambiguate and retry.
		name = fmt.Sprintf("%d-%s-%s", time.Now().Unix(), uuid.NewString(), sanitizeFilename(originalName))
		out, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return name, nil
}

// Path returns the filesystem path for a stored name. The name is reduced to
// its base component so a crafted record value cannot escape the directory.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Exists reports whether a stored name resolves to a regular file. An
// application record is only considered valid while its certificate exists.
func (s *FileStore) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// sanitizeFilename reduces a client-supplied filename to a safe base name:
// path separators are ignored and anything outside a conservative character
// set is replaced. A name with nothing left gets a generated one instead, so
// the stored-name shape stays predictable.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return uuid.NewString()
	}
	return cleaned
}
