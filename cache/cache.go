// Package cache stores raw card list pages on disk so repeated scrapes can
// skip the network for pages that were already fetched.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a directory of cached pages, one file per page.
type Store struct {
	root string
}

// New returns a Store rooted at the given directory. The directory is
// created on first write.
func New(root string) *Store {
	return &Store{root: root}
}

// Page returns the cached body of the given page. A missing entry is not an
// error; it reports false.
func (s *Store) Page(page int) ([]byte, bool, error) {
	body, err := os.ReadFile(s.path(page))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("couldn't read cached page %d: %w", page, err)
	}
	return body, true, nil
}

// PutPage stores the raw body of the given page, replacing any previous
// entry.
func (s *Store) PutPage(page int, body []byte) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("couldn't create cache directory %s: %w", s.root, err)
	}
	if err := os.WriteFile(s.path(page), body, 0o644); err != nil {
		return fmt.Errorf("couldn't write cached page %d: %w", page, err)
	}
	return nil
}

func (s *Store) path(page int) string {
	return filepath.Join(s.root, fmt.Sprintf("page-%d.json", page))
}
