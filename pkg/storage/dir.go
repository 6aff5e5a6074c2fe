package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const dirFileExt = ".json"

// Dir is a file-per-key Store rooted at a directory. Keys are
// percent-encoded into filenames, so any key string is valid. Writes go
// through a temp file and rename, so readers never observe a torn write.
type Dir struct {
	root string
}

// NewDir creates a directory store at root, creating the directory if
// needed.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("storage: dir root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %s: %w", root, err)
	}
	return &Dir{root: root}, nil
}

// Root returns the store's directory.
func (d *Dir) Root() string {
	return d.root
}

// Read returns the stored bytes for key.
func (d *Dir) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: read %q: %w", key, err)
	}
	return data, true, nil
}

// Write stores data under key atomically.
func (d *Dir) Write(key string, data []byte) error {
	target := d.path(key)
	tmp, err := os.CreateTemp(d.root, ".write-*")
	if err != nil {
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (d *Dir) Delete(key string) error {
	err := os.Remove(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: delete %q: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys.
func (d *Dir) Keys() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list %s: %w", d.root, err)
	}
	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, dirFileExt) {
			continue
		}
		key, err := url.PathUnescape(strings.TrimSuffix(name, dirFileExt))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (d *Dir) path(key string) string {
	return filepath.Join(d.root, url.PathEscape(key)+dirFileExt)
}

var _ Store = (*Dir)(nil)
