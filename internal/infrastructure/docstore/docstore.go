// Package docstore is the directory-backed store for employee documents
// (spreadsheets, résumés). One subdirectory per document kind; the core
// never reads file contents, only existence, listing and deletion.
package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// Store keeps every document kind under root/<kind>/<name>.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create document root: %v", domain.ErrStorage, err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Save(_ context.Context, kind, name string, content []byte) error {
	p, err := s.resolve(kind, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("%w: create %s dir: %v", domain.ErrStorage, kind, err)
	}
	if err := os.WriteFile(p, content, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, name, err)
	}
	return nil
}

func (s *Store) List(_ context.Context, kind string) ([]ports.DocumentInfo, error) {
	dir := filepath.Join(s.root, kind)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrStorage, kind, err)
	}

	docs := make([]ports.DocumentInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		docs = append(docs, ports.DocumentInfo{
			Name:       e.Name(),
			Kind:       kind,
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

func (s *Store) Delete(_ context.Context, kind, name string) error {
	p, err := s.resolve(kind, name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, name, err)
	}
	return nil
}

func (s *Store) Exists(_ context.Context, kind, name string) (bool, error) {
	p, err := s.resolve(kind, name)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat %s: %v", domain.ErrStorage, name, err)
	}
	return true, nil
}

// resolve rejects names that would escape the kind directory.
func (s *Store) resolve(kind, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: invalid document name %q", domain.ErrValidation, name)
	}
	return filepath.Join(s.root, kind, name), nil
}
