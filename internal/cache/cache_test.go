// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stores returns one of each Store implementation, backed by a temp
// directory for SQLite, so the shared behavior tests run against both.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, "10.1/ab")
			require.NoError(t, err)
			assert.False(t, ok, "miss expected before Set")

			require.NoError(t, s.Set(ctx, "10.1/ab", []byte(`{"title":"x"}`), time.Hour))

			got, ok, err := s.Get(ctx, "10.1/ab")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`{"title":"x"}`), got)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "k", []byte("old"), time.Hour))
			require.NoError(t, s.Set(ctx, "k", []byte("new"), time.Hour))

			got, ok, err := s.Get(ctx, "k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("new"), got)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Hour))
			require.NoError(t, s.Delete(ctx, "k"))

			_, ok, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting a missing key is fine.
			require.NoError(t, s.Delete(ctx, "missing"))
		})
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	clock := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 12*time.Hour))

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok, "fresh entry should hit")

	clock = clock.Add(13 * time.Hour)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "expired entry should miss")
}

func TestSQLiteStoreExpiryAndPrune(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	clock := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.Set(ctx, "stale", []byte("v"), time.Hour))
	require.NoError(t, s.Set(ctx, "fresh", []byte("v"), 7*24*time.Hour))

	clock = clock.Add(2 * time.Hour)

	_, ok, err := s.Get(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, ok)

	// "stale" was already dropped by the expired read; pruning again
	// finds nothing left to remove.
	n, err := s.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "10.1/ab", []byte("cached"), time.Hour))
	require.NoError(t, s1.Close())

	s2, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, ok, err := s2.Get(ctx, "10.1/ab")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("cached"), got)
}
