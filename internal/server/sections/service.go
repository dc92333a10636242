// Package sections manages the editable content blocks of the public
// page, persisted in the encrypted sections collection file.
package sections

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/store"
)

// sectionsDocument is the decrypted shape of the sections collection
// file, keyed by section type. There is at most one record per type.
type sectionsDocument struct {
	Sections map[Type]Section `json:"sections"`
}

func emptySectionsDocument() sectionsDocument {
	return sectionsDocument{Sections: map[Type]Section{}}
}

type Service struct {
	file *store.File[sectionsDocument]
	log  logging.Logger
	now  func() time.Time
}

// NewService persists sections in <dataDir>/sections.json encrypted with key.
func NewService(dataDir string, key []byte, log logging.Logger) *Service {
	path := filepath.Join(dataDir, "sections.json")
	return &Service{
		file: store.NewFile(path, key, emptySectionsDocument, log),
		log:  log,
		now:  time.Now,
	}
}

// Get returns the section of the given type, or common.ErrorNotFound
// when it has never been written.
func (s *Service) Get(ctx context.Context, t Type) (*Section, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown section type %q", common.ErrorValidation, t)
	}

	var found *Section
	err := s.file.View(ctx, func(doc sectionsDocument) error {
		sec, ok := doc.Sections[t]
		if !ok {
			return common.ErrorNotFound
		}
		found = &sec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update upserts the section of the given type, replacing its content
// wholesale and refreshing UpdatedAt. The id is derived from the type,
// so repeated updates keep a single record per type.
func (s *Service) Update(ctx context.Context, t Type, content map[string]any) (*Section, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown section type %q", common.ErrorValidation, t)
	}
	if content == nil {
		return nil, fmt.Errorf("%w: section content is required", common.ErrorValidation)
	}

	sec := Section{
		ID:        fmt.Sprintf("section_%s", t),
		Type:      t,
		Content:   content,
		UpdatedAt: s.now(),
	}

	err := s.file.Update(ctx, func(doc *sectionsDocument) error {
		doc.Sections[t] = sec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

// GetAll returns every section that has been written, keyed by type.
// Types never written are simply absent.
func (s *Service) GetAll(ctx context.Context) (map[Type]Section, error) {
	result := map[Type]Section{}

	err := s.file.View(ctx, func(doc sectionsDocument) error {
		for _, t := range AllTypes {
			if sec, ok := doc.Sections[t]; ok {
				result[t] = sec
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// InitializeDefaults seeds placeholder content for every type that has
// no record yet. Existing sections are left untouched, so the call is
// safe to repeat on every startup.
func (s *Service) InitializeDefaults(ctx context.Context) error {
	return s.file.Update(ctx, func(doc *sectionsDocument) error {
		for t, content := range defaultContent() {
			if _, ok := doc.Sections[t]; ok {
				continue
			}
			doc.Sections[t] = Section{
				ID:        fmt.Sprintf("section_%s", t),
				Type:      t,
				Content:   content,
				UpdatedAt: s.now(),
			}
			s.log.Info(ctx, "seeded default section", "type", t)
		}
		return nil
	})
}
