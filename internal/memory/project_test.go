package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/memory"
	"github.com/eishan-studio/eishan/internal/repository"
)

// The domain package owns the repository contract; the store must satisfy it.
var _ project.Repository = (*memory.ProjectStore)(nil)

func seedProjects(t *testing.T, titles ...string) *memory.ProjectStore {
	t.Helper()
	store := memory.NewProjectStore()
	ctx := context.Background()
	for i, title := range titles {
		err := store.Insert(ctx, &project.Record{ID: string(rune('a' + i)), Title: title})
		require.NoError(t, err)
	}
	return store
}

func titles(recs []project.Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Title
	}
	return out
}

func TestProjectStoreInsertPrepends(t *testing.T) {
	store := seedProjects(t, "first", "second", "third")

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"third", "second", "first"}, titles(list))
}

func TestProjectStoreGet(t *testing.T) {
	store := seedProjects(t, "first", "second")
	ctx := context.Background()

	rec, err := store.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, "second", rec.Title)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectStoreGetByTitleFirstMatch(t *testing.T) {
	store := seedProjects(t, "dup", "other", "dup")
	ctx := context.Background()

	// Latest insert sits at the head, so it is the first match.
	rec, err := store.GetByTitle(ctx, "dup")
	require.NoError(t, err)
	require.Equal(t, "c", rec.ID)
}

func TestProjectStoreUpdatePreservesOrderAndLength(t *testing.T) {
	store := seedProjects(t, "first", "second", "third")
	ctx := context.Background()

	err := store.Update(ctx, "b", &project.Record{ID: "b", Title: "edited"})
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"third", "edited", "first"}, titles(list))

	err = store.Update(ctx, "missing", &project.Record{ID: "missing"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectStoreDelete(t *testing.T) {
	store := seedProjects(t, "first", "second", "third")
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "b"))
	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"third", "first"}, titles(list))

	require.ErrorIs(t, store.Delete(ctx, "b"), repository.ErrNotFound)
}

func TestProjectStoreDeleteByTitleRemovesAllMatches(t *testing.T) {
	store := seedProjects(t, "dup", "keep", "dup")
	ctx := context.Background()

	removed, err := store.DeleteByTitle(ctx, "dup")
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"keep"}, titles(list))

	// Zero removals is not an error.
	removed, err = store.DeleteByTitle(ctx, "dup")
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestProjectStoreSearchCaseSensitive(t *testing.T) {
	store := seedProjects(t, "Villa Yasmin", "villa annex", "Tower")
	ctx := context.Background()

	found, err := store.Search(ctx, "Villa")
	require.NoError(t, err)
	require.Equal(t, []string{"Villa Yasmin"}, titles(found))

	found, err = store.Search(ctx, "villa")
	require.NoError(t, err)
	require.Equal(t, []string{"villa annex"}, titles(found))
}

func TestProjectStoreListReturnsCopy(t *testing.T) {
	store := seedProjects(t, "first")
	ctx := context.Background()

	list, err := store.List(ctx)
	require.NoError(t, err)
	list[0].Title = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "first", again[0].Title)
}
