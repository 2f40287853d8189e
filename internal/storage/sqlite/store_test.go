package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore opens a store against a throwaway database file with the
// migration run and the initial team seeded.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "equipe-test.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := Open("", testLogger())
		assert.Error(t, err)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "equipe.db")
		store, err := Open(path, testLogger())
		require.NoError(t, err)
		defer store.Close()
	})
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equipe.db")

	first, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Second start against the same file: no duplicate tables, no
	// duplicate seed rows.
	second, err := Open(path, testLogger())
	require.NoError(t, err)
	defer second.Close()

	members, err := second.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 4)
}

func TestSeedMembers(t *testing.T) {
	store := setupTestStore(t)

	members, err := store.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 4)

	assert.Equal(t, "Ana Silva", members[0].Name)
	assert.Equal(t, "Líder de Equipe", members[0].Role)
	assert.Equal(t, "2024-01-15", members[0].JoinedOn)
	assert.Equal(t, "Pedro Lima", members[3].Name)
}

func TestSeedSkippedWhenMembersExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equipe.db")

	store, err := Open(path, testLogger())
	require.NoError(t, err)

	_, err = store.CreateMember(context.Background(), "Rita Souza", "rita@empresa.com", "QA")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	members, err := reopened.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 5)
}
