package users

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/cryptox"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return NewFileRepository(dir, cryptox.DeriveKey("auth-key"), log), dir
}

func testUser(id, username, email string) *User {
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "$a2id$3$salt$ffff",
		Role:         common.RoleAdmin,
		CreatedAt:    time.Now(),
	}
}

func TestFileRepository_CreateAndFind(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser("u1", "alice", "alice@example.com"))
	require.NoError(t, err)

	byUsername, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", byUsername.ID)

	byEmail, err := repo.FindByIdentifier(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.FindByIdentifier(ctx, "nobody")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFileRepository_CollisionOnUsernameOrEmail(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser("u1", "alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testUser("u2", "alice", "other@example.com"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = repo.Create(ctx, testUser("u3", "bob", "alice@example.com"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "failed creates must not persist anything")
}

func TestFileRepository_PersistsAcrossInstances(t *testing.T) {
	repo, dir := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser("u1", "alice", "alice@example.com"))
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	reopened := NewFileRepository(dir, cryptox.DeriveKey("auth-key"), log)

	found, err := reopened.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)
	assert.Equal(t, "$a2id$3$salt$ffff", found.PasswordHash)
}

func TestFileRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	for _, u := range []*User{
		testUser("u1", "a", "a@x.com"),
		testUser("u2", "b", "b@x.com"),
		testUser("u3", "c", "c@x.com"),
	} {
		_, err := repo.Create(ctx, u)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"u1", "u2", "u3"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestFileRepository_FileOnDiskIsEncrypted(t *testing.T) {
	repo, dir := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser("u1", "alice", "alice@example.com"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice")
	assert.NotContains(t, string(raw), "$a2id$")
}
