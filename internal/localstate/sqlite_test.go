package localstate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "state.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyCartID, "c1"))

	got, err := store.Get(ctx, KeyCartID)
	require.NoError(t, err)
	assert.Equal(t, "c1", got)
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyCartID, "c1"))
	require.NoError(t, store.Set(ctx, KeyCartID, "c2"))

	got, err := store.Get(ctx, KeyCartID)
	require.NoError(t, err)
	assert.Equal(t, "c2", got)
}

func TestSQLiteStoreMissingKey(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreDeleteMany(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, key := range []string{KeyToken, KeyUserID, KeyRoles} {
		require.NoError(t, store.Set(ctx, key, "v"))
	}

	// Deleting a key that was never set must not fail.
	require.NoError(t, store.Delete(ctx, KeyToken, KeyUserID, KeyRoles, KeyCartID))

	for _, key := range []string{KeyToken, KeyUserID, KeyRoles} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound, key)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyCartID, "c9"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, KeyCartID)
	require.NoError(t, err)
	assert.Equal(t, "c9", got)
}
