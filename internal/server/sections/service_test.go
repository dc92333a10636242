package sections

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"github.com/dmitrijs2005/foliovault/internal/cryptox"
	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(t.TempDir(), cryptox.DeriveKey("test-passphrase"), logging.NewJSONLogger())
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	svc.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return svc
}

func TestService_UpdateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sec, err := svc.Update(ctx, TypeHero, map[string]any{"title": "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "section_hero", sec.ID)
	assert.Equal(t, TypeHero, sec.Type)

	got, err := svc.Get(ctx, TypeHero)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Content["title"])
}

func TestService_Get_NeverWritten(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), TypeFooter)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestService_UpdateIsUpsert(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Update(ctx, TypeAbout, map[string]any{"title": "v1"})
	require.NoError(t, err)
	second, err := svc.Update(ctx, TypeAbout, map[string]any{"title": "v2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "repeated updates keep a single record per type")
	assert.Equal(t, "v2", all[TypeAbout].Content["title"])
}

func TestService_Update_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, Type("banner"), map[string]any{"x": 1})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Update(ctx, TypeHero, nil)
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Get(ctx, Type("banner"))
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestService_InitializeDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.InitializeDefaults(ctx))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.NotContains(t, all, TypeTeam, "team section renders from team members, no default")

	hero, err := svc.Get(ctx, TypeHero)
	require.NoError(t, err)
	assert.Equal(t, "Full Stack Developer", hero.Content["title"])
}

func TestService_InitializeDefaults_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, TypeHero, map[string]any{"title": "Customized"})
	require.NoError(t, err)

	require.NoError(t, svc.InitializeDefaults(ctx))
	require.NoError(t, svc.InitializeDefaults(ctx))

	hero, err := svc.Get(ctx, TypeHero)
	require.NoError(t, err)
	assert.Equal(t, "Customized", hero.Content["title"], "existing sections stay untouched")

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
