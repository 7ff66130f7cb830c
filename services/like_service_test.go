package services

import (
	"context"
	"testing"

	"redhatters.link/repositories"

	"github.com/stretchr/testify/assert"
)

func TestToggleLike(t *testing.T) {
	svc := NewLikeService(repositories.NewMemoryKVStore())
	ctx := context.Background()

	assert.False(t, svc.IsLiked(ctx, "p1", "newsletter-3"))
	assert.True(t, svc.ToggleLike(ctx, "p1", "newsletter-3"))
	assert.True(t, svc.IsLiked(ctx, "p1", "newsletter-3"))
	assert.False(t, svc.ToggleLike(ctx, "p1", "newsletter-3"))
	assert.False(t, svc.IsLiked(ctx, "p1", "newsletter-3"))
}

func TestLikedItems(t *testing.T) {
	svc := NewLikeService(repositories.NewMemoryKVStore())
	ctx := context.Background()

	svc.ToggleLike(ctx, "p1", "newsletter-1")
	svc.ToggleLike(ctx, "p1", "newsletter-2")
	svc.ToggleLike(ctx, "p1", "newsletter-2") // unliked again

	items := svc.LikedItems(ctx, "p1")
	assert.Equal(t, []string{"newsletter-1"}, items)

	// Profiles are isolated.
	assert.Empty(t, svc.LikedItems(ctx, "p2"))
}
