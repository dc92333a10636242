package users

import (
	"context"
	"path/filepath"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/store"
)

// usersDocument is the decrypted shape of the users collection file:
// the primary map plus an ordered id list for stable iteration.
type usersDocument struct {
	Users   map[string]User `json:"users"`
	UserIDs []string        `json:"userIds"`
}

func emptyUsersDocument() usersDocument {
	return usersDocument{Users: map[string]User{}, UserIDs: []string{}}
}

// FileRepository keeps all users in one encrypted file.
type FileRepository struct {
	file *store.File[usersDocument]
}

// NewFileRepository stores users in <dataDir>/users.json encrypted with key.
func NewFileRepository(dataDir string, key []byte, log logging.Logger) *FileRepository {
	path := filepath.Join(dataDir, "users.json")
	return &FileRepository{
		file: store.NewFile(path, key, emptyUsersDocument, log),
	}
}

func (r *FileRepository) Create(ctx context.Context, user *User) (*User, error) {
	err := r.file.Update(ctx, func(doc *usersDocument) error {
		for _, existing := range doc.Users {
			if existing.Username == user.Username || existing.Email == user.Email {
				return common.ErrorAlreadyExists
			}
		}
		doc.Users[user.ID] = *user
		doc.UserIDs = append(doc.UserIDs, user.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *FileRepository) FindByIdentifier(ctx context.Context, identifier string) (*User, error) {
	var found *User

	err := r.file.View(ctx, func(doc usersDocument) error {
		for _, id := range doc.UserIDs {
			u, ok := doc.Users[id]
			if !ok {
				continue
			}
			if u.Username == identifier || u.Email == identifier {
				found = &u
				return nil
			}
		}
		return common.ErrorNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *FileRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.file.View(ctx, func(doc usersDocument) error {
		n = len(doc.UserIDs)
		return nil
	})
	return n, err
}

func (r *FileRepository) List(ctx context.Context) ([]User, error) {
	var result []User
	err := r.file.View(ctx, func(doc usersDocument) error {
		for _, id := range doc.UserIDs {
			if u, ok := doc.Users[id]; ok {
				result = append(result, u)
			}
		}
		return nil
	})
	return result, err
}
