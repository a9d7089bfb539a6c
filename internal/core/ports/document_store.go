package ports

import (
	"context"
	"time"
)

// Document kinds. Spreadsheets are capped (30 files by default); résumés are
// not. The core never parses document contents.
const (
	DocSpreadsheet = "spreadsheets"
	DocResume      = "resumes"
)

// DocumentInfo describes one stored file.
type DocumentInfo struct {
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// DocumentStore is the directory-backed file store for employee documents.
type DocumentStore interface {
	Save(ctx context.Context, kind, name string, content []byte) error
	List(ctx context.Context, kind string) ([]DocumentInfo, error)
	Delete(ctx context.Context, kind, name string) error
	Exists(ctx context.Context, kind, name string) (bool, error)
}

// DocumentService wraps the store with role scoping and the per-kind cap.
type DocumentService interface {
	Upload(ctx context.Context, actor Actor, kind, name string, content []byte) (*DocumentInfo, error)
	List(ctx context.Context, actor Actor, kind string) ([]DocumentInfo, error)
	Delete(ctx context.Context, actor Actor, kind, name string) error
}
