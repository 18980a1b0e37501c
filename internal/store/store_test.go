package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mhike/internal/store"
	"github.com/pkordes/mhike/testutil"
)

func TestOpen_CreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mhike.db")

	s, err := store.Open(context.Background(), path, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	assert.Equal(t, path, s.Path())
	assert.DirExists(t, filepath.Dir(path))
}

func TestOpen_UnusableDir(t *testing.T) {
	// A regular file where the data directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := store.Open(context.Background(), filepath.Join(blocker, "sub", "mhike.db"), testutil.Logger())

	require.Error(t, err)
	assert.ErrorContains(t, err, "store.Open")
}

func TestInitialize_Idempotent(t *testing.T) {
	s := testutil.NewStore(t) // already initialized once
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx, `INSERT INTO hikes
		(name, location, date, hasParking, distance, duration, elevation, difficulty, groupSize)
		VALUES ('Ridge Walk', 'Alps', '06/01/2024', 1, 5, 2, 300, 'Easy', 2)`)
	require.NoError(t, err)

	require.NoError(t, s.Initialize(ctx), "second Initialize must be harmless")

	var n int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM hikes`).Scan(&n))
	assert.Equal(t, 1, n, "existing rows must survive re-initialization")
}

func TestInitialize_ForeignKeysOn(t *testing.T) {
	s := testutil.NewStore(t)

	on, err := s.ForeignKeysEnabled(context.Background())

	require.NoError(t, err)
	assert.True(t, on)
}

func TestInitialize_MemoryStore(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, store.MemoryPath, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Initialize(ctx))

	var n int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM observations`).Scan(&n))
	assert.Zero(t, n)
}

func TestClose_ThenQueryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mhike.db")
	s, err := store.Open(context.Background(), path, testutil.Logger())
	require.NoError(t, err)

	require.NoError(t, s.Close())

	_, err = s.ForeignKeysEnabled(context.Background())
	assert.Error(t, err)
}
