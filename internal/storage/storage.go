// Package storage persists uploaded files for officials: signature images
// and ID photos. Files are kept on local disk under the configured upload
// root and served back by the HTTP server under /uploads/.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	signaturesDir = "signatures"
	photosDir     = "photos"
)

// Store writes uploads beneath a root directory.
type Store struct {
	root string
	// now is swappable in tests; timestamps keep stored names unique
	now func() time.Time
}

// New creates the upload directories if needed and returns a store.
func New(root string) (*Store, error) {
	for _, dir := range []string{signaturesDir, photosDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &Store{root: root, now: time.Now}, nil
}

// Root returns the upload root directory for serving static files.
func (s *Store) Root() string {
	return s.root
}

// SaveSignature stores a signature image and returns its public URL path.
func (s *Store) SaveSignature(originalName string, r io.Reader) (string, error) {
	return s.save(signaturesDir, originalName, r)
}

// SavePhoto stores an official's photo and returns its public URL path.
func (s *Store) SavePhoto(originalName string, r io.Reader) (string, error) {
	return s.save(photosDir, originalName, r)
}

func (s *Store) save(dir, originalName string, r io.Reader) (string, error) {
	name := s.storedName(originalName)
	dst := filepath.Join(s.root, dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return "/uploads/" + dir + "/" + name, nil
}

// storedName prefixes the sanitized original name with a millisecond
// timestamp so repeated uploads of the same file never collide.
func (s *Store) storedName(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	base = sanitize(base)
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), base, strings.ToLower(ext))
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
