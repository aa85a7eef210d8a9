package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazrooa/fatoora/apperr"
	"github.com/mazrooa/fatoora/models"
)

func testRepo(t *testing.T) Repository[models.Client, *models.Client] {
	t.Helper()
	db, err := Open(models.Config{SQLitePath: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	return NewRepository[models.Client, *models.Client](db)
}

func testClient() *models.Client {
	return &models.Client{
		Name:         "Acme Traders",
		Email:        "billing@acme.example.com",
		Address:      "14 Market Street",
		MobileNumber: "9876543210",
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testClient()
	rec.ID = 999 // client-supplied ids must be discarded
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotZero(t, rec.ID)
	assert.NotEqual(t, uint(999), rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Name, found.Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepositoryFindMissing(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepositoryReplace(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testClient()
	require.NoError(t, repo.Create(ctx, rec))
	created := rec.CreatedAt

	replacement := testClient()
	replacement.Name = "Acme Traders Ltd"
	require.NoError(t, repo.Replace(ctx, rec.ID, replacement))
	assert.Equal(t, rec.ID, replacement.ID)

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders Ltd", found.Name)
	// identity and creation time survive a replace
	assert.Equal(t, created.Unix(), found.CreatedAt.Unix())

	err = repo.Replace(ctx, 4242, testClient())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepositoryDelete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rec := testClient()
	require.NoError(t, repo.Create(ctx, rec))

	require.NoError(t, repo.Delete(ctx, rec.ID))
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), apperr.ErrNotFound)

	_, err := repo.FindByID(ctx, rec.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// hard delete: the row is gone from the table, not tombstoned
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 0)
}
