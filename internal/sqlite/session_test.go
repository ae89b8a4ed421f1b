package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eishan-studio/eishan/internal/repository"
	"github.com/eishan-studio/eishan/internal/sqlite"
)

var _ repository.SessionStore = (*sqlite.SessionStore)(nil)

func newStore(t *testing.T) *sqlite.SessionStore {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())
	return sqlite.NewSessionStore(db)
}

func TestSessionStore_GetEmpty(t *testing.T) {
	store := newStore(t)

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionStore_PutGetRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1"))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-1", token)
}

func TestSessionStore_PutReplacesSingleKey(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1"))
	require.NoError(t, store.Put(ctx, "token-2"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-2", token)
}

func TestSessionStore_Delete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	// Deleting an absent key is a no-op.
	require.NoError(t, store.Delete(ctx))

	require.NoError(t, store.Put(ctx, "token-1"))
	require.NoError(t, store.Delete(ctx))

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
