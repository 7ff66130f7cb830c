package services

import (
	"context"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"
	"redhatters.link/repositories"

	"go.uber.org/zap"
)

// ILikeService tracks which newsletter items a profile has liked.
type ILikeService interface {
	ToggleLike(ctx context.Context, profileID, itemID string) bool
	IsLiked(ctx context.Context, profileID, itemID string) bool
	LikedItems(ctx context.Context, profileID string) []string
}

// LikeService stores the liked mapping under one key, like the old site's
// likedNewsletters blob.
type LikeService struct {
	store repositories.IKVStore
}

// NewLikeService wires a LikeService.
func NewLikeService(store repositories.IKVStore) ILikeService {
	return &LikeService{store: store}
}

// ToggleLike flips the liked state of an item and returns the new state.
func (s *LikeService) ToggleLike(ctx context.Context, profileID, itemID string) bool {
	liked := s.readAll(ctx, profileID)
	liked[itemID] = !liked[itemID]
	if err := s.store.Set(ctx, profileID, models.KVKeyLikedItems, liked); err != nil {
		configslog.Log.Error("like persist failed", zap.String("item", itemID), zap.Error(err))
	}
	return liked[itemID]
}

func (s *LikeService) IsLiked(ctx context.Context, profileID, itemID string) bool {
	return s.readAll(ctx, profileID)[itemID]
}

// LikedItems returns the ids currently liked.
func (s *LikeService) LikedItems(ctx context.Context, profileID string) []string {
	var out []string
	for id, liked := range s.readAll(ctx, profileID) {
		if liked {
			out = append(out, id)
		}
	}
	return out
}

func (s *LikeService) readAll(ctx context.Context, profileID string) map[string]bool {
	liked := make(map[string]bool)
	s.store.Get(ctx, profileID, models.KVKeyLikedItems, &liked)
	return liked
}

var _ ILikeService = (*LikeService)(nil)
