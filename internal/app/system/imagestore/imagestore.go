// Package imagestore persists profile images under the public images path.
//
// Filenames are `<userID><originalFileName>` so an account's picture is
// addressable without a lookup. The default image is shared and never
// removed.
package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes and removes profile images. The local-disk implementation is
// the default; tests use a temp directory.
type Store struct {
	root        string
	urlPrefix   string
	defaultName string
}

// New creates a Store rooted at dir. urlPrefix is the public URL path the
// files are served under; defaultName is the shared placeholder image.
func New(dir, urlPrefix, defaultName string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	return &Store{root: dir, urlPrefix: urlPrefix, defaultName: defaultName}, nil
}

// DefaultName returns the placeholder filename new accounts start with.
func (s *Store) DefaultName() string {
	return s.defaultName
}

// URLPrefix returns the public path images are served under.
func (s *Store) URLPrefix() string {
	return s.urlPrefix
}

// Root returns the directory images are written to. The file server mounts
// it read-only.
func (s *Store) Root() string {
	return s.root
}

// Save writes the uploaded image under <userID><originalName> and returns
// the stored filename. The original name is sanitized first: uploads arrive
// straight from multipart forms.
func (s *Store) Save(userID, originalName string, r io.Reader) (string, error) {
	name := userID + sanitizeFilename(originalName)
	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored image. The default image and empty names are
// skipped; a missing file is not an error (idempotent delete).
func (s *Store) Remove(name string) error {
	if name == "" || name == s.defaultName {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeFilename keeps uploads from escaping the images directory or
// carrying awkward characters.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
