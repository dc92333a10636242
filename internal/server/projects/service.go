// Package projects implements the project showcase collection on top of
// the encrypted record store.
package projects

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/store"
)

// projectsDocument is the decrypted shape of the projects collection file.
// The ordered id list preserves insertion order across deletions and the
// slug map is the secondary index for public detail lookups; both are
// updated together with the primary map before every save.
type projectsDocument struct {
	Projects     map[string]Project `json:"projects"`
	ProjectIDs   []string           `json:"projectIds"`
	ProjectSlugs map[string]string  `json:"projectSlugs"`
}

func emptyProjectsDocument() projectsDocument {
	return projectsDocument{
		Projects:     map[string]Project{},
		ProjectIDs:   []string{},
		ProjectSlugs: map[string]string{},
	}
}

type Service struct {
	file *store.File[projectsDocument]
	log  logging.Logger
	now  func() time.Time
}

// NewService persists projects in <dataDir>/projects.json encrypted with key.
func NewService(dataDir string, key []byte, log logging.Logger) *Service {
	path := filepath.Join(dataDir, "projects.json")
	return &Service{
		file: store.NewFile(path, key, emptyProjectsDocument, log),
		log:  log,
		now:  time.Now,
	}
}

// Create generates the id, slug and timestamps, inserts the record into
// the primary map and both indices, and persists.
func (s *Service) Create(ctx context.Context, in NewProject) (*Project, error) {
	var created Project

	err := s.file.Update(ctx, func(doc *projectsDocument) error {
		now := s.now()
		id := common.NewRecordID("project")
		slug := uniqueSlug(doc, Slugify(in.Title), id)

		created = Project{
			ID:           id,
			Title:        in.Title,
			Slug:         slug,
			Description:  in.Description,
			Technologies: in.Technologies,
			Images:       in.Images,
			LiveURL:      in.LiveURL,
			GithubURL:    in.GithubURL,
			Category:     in.Category,
			Featured:     in.Featured,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		doc.Projects[id] = created
		doc.ProjectIDs = append(doc.ProjectIDs, id)
		doc.ProjectSlugs[slug] = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Get returns the project by id, or common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	var found *Project

	err := s.file.View(ctx, func(doc projectsDocument) error {
		p, ok := doc.Projects[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetBySlug resolves the slug index and returns the project, or
// common.ErrorNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	var found *Project

	err := s.file.View(ctx, func(doc projectsDocument) error {
		id, ok := doc.ProjectSlugs[slug]
		if !ok {
			return common.ErrorNotFound
		}
		p, ok := doc.Projects[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update merges the partial fields into the existing record. A title
// change regenerates the slug: the old index entry is removed and the new
// one reserved before the single save. ID and CreatedAt never change;
// UpdatedAt always refreshes.
func (s *Service) Update(ctx context.Context, id string, upd ProjectUpdate) (*Project, error) {
	var updated *Project

	err := s.file.Update(ctx, func(doc *projectsDocument) error {
		existing, ok := doc.Projects[id]
		if !ok {
			return common.ErrorNotFound
		}

		if upd.Title != nil && *upd.Title != existing.Title {
			existing.Title = *upd.Title
			newSlug := uniqueSlug(doc, Slugify(existing.Title), id)
			if newSlug != existing.Slug {
				delete(doc.ProjectSlugs, existing.Slug)
				doc.ProjectSlugs[newSlug] = id
				existing.Slug = newSlug
			}
		}
		if upd.Description != nil {
			existing.Description = *upd.Description
		}
		if upd.Technologies != nil {
			existing.Technologies = *upd.Technologies
		}
		if upd.Images != nil {
			existing.Images = *upd.Images
		}
		if upd.LiveURL != nil {
			existing.LiveURL = *upd.LiveURL
		}
		if upd.GithubURL != nil {
			existing.GithubURL = *upd.GithubURL
		}
		if upd.Category != nil {
			existing.Category = *upd.Category
		}
		if upd.Featured != nil {
			existing.Featured = *upd.Featured
		}

		existing.UpdatedAt = s.now()
		doc.Projects[id] = existing
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record from the primary map, the id list and the
// slug index, then persists. Returns false without touching the file when
// the id is absent.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	err := s.file.Update(ctx, func(doc *projectsDocument) error {
		existing, ok := doc.Projects[id]
		if !ok {
			return common.ErrorNotFound
		}

		delete(doc.Projects, id)
		delete(doc.ProjectSlugs, existing.Slug)

		ids := doc.ProjectIDs[:0]
		for _, pid := range doc.ProjectIDs {
			if pid != id {
				ids = append(ids, pid)
			}
		}
		doc.ProjectIDs = ids
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List loads the whole collection, filters in memory, sorts by UpdatedAt
// descending and slices the requested page. Total counts the filtered set;
// an out-of-range page yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, opts ListOptions) (*Page, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}

	var result Page

	err := s.file.View(ctx, func(doc projectsDocument) error {
		filtered := make([]Project, 0, len(doc.ProjectIDs))
		for _, id := range doc.ProjectIDs {
			p, ok := doc.Projects[id]
			if !ok {
				continue
			}
			if opts.Category != "" && p.Category != opts.Category {
				continue
			}
			if opts.Featured != nil && p.Featured != *opts.Featured {
				continue
			}
			if opts.Search != "" && !matchesSearch(&p, opts.Search) {
				continue
			}
			filtered = append(filtered, p)
		}

		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
		})

		result.Total = len(filtered)

		start := (page - 1) * limit
		if start >= len(filtered) {
			result.Projects = []Project{}
			return nil
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		result.Projects = filtered[start:end]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func matchesSearch(p *Project, search string) bool {
	needle := strings.ToLower(search)

	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}
