package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/memory"
	"github.com/eishan-studio/eishan/internal/repository"
)

var _ review.Repository = (*memory.ReviewStore)(nil)

func seedReviews(t *testing.T, names ...string) *memory.ReviewStore {
	t.Helper()
	store := memory.NewReviewStore()
	ctx := context.Background()
	for i, name := range names {
		err := store.Insert(ctx, &review.Review{ID: int64(i + 1), Name: name})
		require.NoError(t, err)
	}
	return store
}

func names(revs []review.Review) []string {
	out := make([]string, len(revs))
	for i, rev := range revs {
		out[i] = rev.Name
	}
	return out
}

func TestReviewStoreInsertPrepends(t *testing.T) {
	store := seedReviews(t, "first", "second")

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"second", "first"}, names(list))
}

func TestReviewStoreUpdateLeavesOthersUntouched(t *testing.T) {
	store := seedReviews(t, "first", "second")
	ctx := context.Background()

	err := store.Update(ctx, 2, &review.Review{ID: 2, Name: "edited", Role: "client"})
	require.NoError(t, err)

	other, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "first", other.Name)

	edited, err := store.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "edited", edited.Name)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestReviewStoreDelete(t *testing.T) {
	store := seedReviews(t, "first", "second")
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, 1))
	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"second"}, names(list))

	require.ErrorIs(t, store.Delete(ctx, 1), repository.ErrNotFound)
}

func TestReviewStoreSearchByName(t *testing.T) {
	store := seedReviews(t, "خالد العتيبي", "منى الزهراني")
	ctx := context.Background()

	found, err := store.Search(ctx, "خالد")
	require.NoError(t, err)
	require.Equal(t, []string{"خالد العتيبي"}, names(found))

	found, err = store.Search(ctx, "سارة")
	require.NoError(t, err)
	require.Empty(t, found)
}
