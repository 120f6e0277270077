package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

func TestCollectionStore_SaveAndGet(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()
	c := &domain.Collection{ID: "col-1", Name: "papers", DocumentIDs: []string{"a", "b"}}

	require.NoError(t, store.Save(ctx, c))
	c.DocumentIDs[0] = "mutated"

	got, err := store.Get(ctx, "col-1")
	require.NoError(t, err)
	assert.Equal(t, "papers", got.Name)
	assert.Equal(t, []string{"a", "b"}, got.DocumentIDs)

	byName, err := store.GetByName(ctx, "papers")
	require.NoError(t, err)
	assert.Equal(t, "col-1", byName.ID)
}

func TestCollectionStore_NotFound(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectionStore_DuplicateName(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Collection{ID: "col-1", Name: "papers"}))

	err := store.Save(ctx, &domain.Collection{ID: "col-2", Name: "papers"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	// Updating the same collection keeps its name.
	assert.NoError(t, store.Save(ctx, &domain.Collection{ID: "col-1", Name: "papers", Description: "x"}))
}

func TestCollectionStore_ListAndListByDocument(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Collection{ID: "1", Name: "zeta", DocumentIDs: []string{"a"}}))
	require.NoError(t, store.Save(ctx, &domain.Collection{ID: "2", Name: "alpha", DocumentIDs: []string{"a", "b"}}))
	require.NoError(t, store.Save(ctx, &domain.Collection{ID: "3", Name: "mid"}))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "zeta", all[2].Name)

	withA, err := store.ListByDocument(ctx, "a")
	require.NoError(t, err)
	require.Len(t, withA, 2)
	assert.Equal(t, "alpha", withA[0].Name)
	assert.Equal(t, "zeta", withA[1].Name)

	withC, err := store.ListByDocument(ctx, "c")
	require.NoError(t, err)
	assert.Empty(t, withC)
}

func TestCollectionStore_Delete(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Collection{ID: "1", Name: "papers"}))

	require.NoError(t, store.Delete(ctx, "1"))

	_, err := store.Get(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
