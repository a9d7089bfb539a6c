// Package csvstore implements the flat-file tabular persistence layer: one
// CSV file per table, loaded in full at construction time and rewritten in
// full on every mutation. Missing or schema-mismatched files are silently
// replaced with an empty table carrying the canonical header (self-healing);
// write failures surface as domain.ErrStorage.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// Table is an ordered collection of rows under a fixed column header.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable returns an empty table with the given schema.
func NewTable(schema []string) *Table {
	return &Table{Header: append([]string(nil), schema...)}
}

// Load reads the table at path. When the file is absent, unreadable as CSV,
// or its header does not match schema exactly, a fresh empty table is
// persisted and returned; healed reports that this happened. Only the
// persisting write can fail.
func Load(path string, schema []string) (t *Table, healed bool, err error) {
	t, err = read(path, schema)
	if err == nil {
		return t, false, nil
	}

	fresh := NewTable(schema)
	if saveErr := Save(path, fresh); saveErr != nil {
		return nil, false, saveErr
	}
	return fresh, true, nil
}

// Save serializes the full table to path, overwriting prior contents. The
// write is not atomic: a crash mid-write can truncate the backing file. That
// is an accepted property of the design, not a recoverable condition here.
func Save(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create dir for %s: %v", domain.ErrStorage, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrStorage, path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write header to %s: %v", domain.ErrStorage, path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write rows to %s: %v", domain.ErrStorage, path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: flush %s: %v", domain.ErrStorage, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}

var errSchemaMismatch = errors.New("schema mismatch")

func read(path string, schema []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil { // includes io.EOF on an empty file
		return nil, err
	}
	if !schemaMatches(header, schema) {
		return nil, errSchemaMismatch
	}

	t := &Table{Header: append([]string(nil), schema...)}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}
}

func schemaMatches(header, schema []string) bool {
	if len(header) != len(schema) {
		return false
	}
	for i := range schema {
		if header[i] != schema[i] {
			return false
		}
	}
	return true
}
