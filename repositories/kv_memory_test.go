package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	type nested struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}
	in := map[string]nested{
		"a": {Name: "lunch", Count: 2, Tags: []string{"x", "y"}},
		"b": {Name: "tea", Count: 0, Tags: nil},
	}
	require.NoError(t, store.Set(ctx, "p1", "k", in))

	var out map[string]nested
	require.True(t, store.Get(ctx, "p1", "k", &out))
	assert.Equal(t, in, out)
}

func TestMemoryKVMissingAndRemoved(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	var out string
	assert.False(t, store.Get(ctx, "p1", "missing", &out))

	require.NoError(t, store.Set(ctx, "p1", "k", "value"))
	require.NoError(t, store.Remove(ctx, "p1", "k"))
	assert.False(t, store.Get(ctx, "p1", "k", &out))

	// Removing twice stays quiet.
	require.NoError(t, store.Remove(ctx, "p1", "k"))
}

func TestMemoryKVLastWriteWins(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "p1", "k", 1))
	require.NoError(t, store.Set(ctx, "p1", "k", 2))

	var out int
	require.True(t, store.Get(ctx, "p1", "k", &out))
	assert.Equal(t, 2, out)
}

func TestMemoryKVProfileIsolation(t *testing.T) {
	store := NewMemoryKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "p1", "k", "one"))

	var out string
	assert.False(t, store.Get(ctx, "p2", "k", &out))
}
