// Package team manages the team roster collection on top of the
// encrypted record store.
package team

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/store"
)

// teamDocument is the decrypted shape of the team collection file. The
// ordered id list preserves insertion order across deletions.
type teamDocument struct {
	Members   map[string]Member `json:"members"`
	MemberIDs []string          `json:"memberIds"`
}

func emptyTeamDocument() teamDocument {
	return teamDocument{
		Members:   map[string]Member{},
		MemberIDs: []string{},
	}
}

type Service struct {
	file *store.File[teamDocument]
	log  logging.Logger
	now  func() time.Time
}

// NewService persists members in <dataDir>/team-members.json encrypted
// with key.
func NewService(dataDir string, key []byte, log logging.Logger) *Service {
	path := filepath.Join(dataDir, "team-members.json")
	return &Service{
		file: store.NewFile(path, key, emptyTeamDocument, log),
		log:  log,
		now:  time.Now,
	}
}

// Create generates the id and join date, marks the member active and
// persists.
func (s *Service) Create(ctx context.Context, in NewMember) (*Member, error) {
	var created Member

	err := s.file.Update(ctx, func(doc *teamDocument) error {
		created = Member{
			ID:          common.NewRecordID("member"),
			Name:        in.Name,
			Role:        in.Role,
			Bio:         in.Bio,
			Avatar:      in.Avatar,
			Skills:      in.Skills,
			Experience:  in.Experience,
			Specialties: in.Specialties,
			SocialLinks: in.SocialLinks,
			JoinedDate:  s.now(),
			IsActive:    true,
		}

		doc.Members[created.ID] = created
		doc.MemberIDs = append(doc.MemberIDs, created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Get returns the member by id, or common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Member, error) {
	var found *Member

	err := s.file.View(ctx, func(doc teamDocument) error {
		m, ok := doc.Members[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update merges the partial fields into the existing record. ID and
// JoinedDate never change.
func (s *Service) Update(ctx context.Context, id string, upd MemberUpdate) (*Member, error) {
	var updated *Member

	err := s.file.Update(ctx, func(doc *teamDocument) error {
		existing, ok := doc.Members[id]
		if !ok {
			return common.ErrorNotFound
		}

		if upd.Name != nil {
			existing.Name = *upd.Name
		}
		if upd.Role != nil {
			existing.Role = *upd.Role
		}
		if upd.Bio != nil {
			existing.Bio = *upd.Bio
		}
		if upd.Avatar != nil {
			existing.Avatar = *upd.Avatar
		}
		if upd.Skills != nil {
			existing.Skills = *upd.Skills
		}
		if upd.Experience != nil {
			existing.Experience = *upd.Experience
		}
		if upd.Specialties != nil {
			existing.Specialties = *upd.Specialties
		}
		if upd.SocialLinks != nil {
			existing.SocialLinks = *upd.SocialLinks
		}
		if upd.IsActive != nil {
			existing.IsActive = *upd.IsActive
		}

		doc.Members[id] = existing
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record from the map and the id list, then
// persists. Returns false without touching the file when the id is
// absent.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	err := s.file.Update(ctx, func(doc *teamDocument) error {
		if _, ok := doc.Members[id]; !ok {
			return common.ErrorNotFound
		}

		delete(doc.Members, id)
		ids := doc.MemberIDs[:0]
		for _, mid := range doc.MemberIDs {
			if mid != id {
				ids = append(ids, mid)
			}
		}
		doc.MemberIDs = ids
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

// List returns members sorted by join date descending. With activeOnly
// set, deactivated members are filtered out.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]Member, error) {
	var members []Member

	err := s.file.View(ctx, func(doc teamDocument) error {
		members = make([]Member, 0, len(doc.MemberIDs))
		for _, id := range doc.MemberIDs {
			m, ok := doc.Members[id]
			if !ok {
				continue
			}
			if activeOnly && !m.IsActive {
				continue
			}
			members = append(members, m)
		}

		sort.SliceStable(members, func(i, j int) bool {
			return members[i].JoinedDate.After(members[j].JoinedDate)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}
