package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// ownerSeparator joins the uploading employee's username to the stored file
// name so ownership survives in a plain directory listing.
const ownerSeparator = "__"

var allowedExtensions = map[string][]string{
	ports.DocSpreadsheet: {".xlsx", ".xls", ".csv"},
	ports.DocResume:      {".pdf"},
}

// DocumentService wraps the directory-backed document store with role
// scoping and the spreadsheet cap. Contents are never parsed here.
type DocumentService struct {
	store ports.DocumentStore
	// spreadsheetLimit caps the spreadsheets directory; 0 means the default 30.
	spreadsheetLimit int
	log              zerolog.Logger
}

const defaultSpreadsheetLimit = 30

func NewDocumentService(store ports.DocumentStore, spreadsheetLimit int, log zerolog.Logger) *DocumentService {
	if spreadsheetLimit <= 0 {
		spreadsheetLimit = defaultSpreadsheetLimit
	}
	return &DocumentService{store: store, spreadsheetLimit: spreadsheetLimit, log: log}
}

func (s *DocumentService) Upload(ctx context.Context, actor ports.Actor, kind, name string, content []byte) (*ports.DocumentInfo, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateName(kind, name); err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", domain.ErrValidation)
	}

	if kind == ports.DocSpreadsheet {
		existing, err := s.store.List(ctx, kind)
		if err != nil {
			return nil, err
		}
		if len(existing) >= s.spreadsheetLimit {
			return nil, domain.ErrDocumentLimit
		}
	}

	stored := storedName(actor, name)
	if err := s.store.Save(ctx, kind, stored, content); err != nil {
		return nil, err
	}

	s.log.Info().Str("kind", kind).Str("name", stored).Int("bytes", len(content)).Msg("document stored")
	return &ports.DocumentInfo{Name: stored, Kind: kind, Size: int64(len(content))}, nil
}

// List returns the stored documents of a kind. Admins see everything; an
// employee only the files bearing their own prefix.
func (s *DocumentService) List(ctx context.Context, actor ports.Actor, kind string) ([]ports.DocumentInfo, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	docs, err := s.store.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleAdmin {
		return docs, nil
	}

	own := make([]ports.DocumentInfo, 0, len(docs))
	for _, d := range docs {
		if strings.HasPrefix(d.Name, actor.Username+ownerSeparator) {
			own = append(own, d)
		}
	}
	return own, nil
}

func (s *DocumentService) Delete(ctx context.Context, actor ports.Actor, kind, name string) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	if actor.Role != domain.RoleAdmin && !strings.HasPrefix(name, actor.Username+ownerSeparator) {
		return domain.ErrForbidden
	}
	return s.store.Delete(ctx, kind, name)
}

func validateKind(kind string) error {
	if kind != ports.DocSpreadsheet && kind != ports.DocResume {
		return fmt.Errorf("%w: unknown document kind %q", domain.ErrValidation, kind)
	}
	return nil
}

func validateName(kind, name string) error {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: invalid document name %q", domain.ErrValidation, name)
	}
	ext := strings.ToLower(path.Ext(name))
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s files cannot be stored as %s", domain.ErrValidation, ext, kind)
}

func storedName(actor ports.Actor, name string) string {
	if actor.Role == domain.RoleAdmin {
		return name
	}
	return actor.Username + ownerSeparator + name
}
