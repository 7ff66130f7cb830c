package repositories

import (
	"context"
	"encoding/json"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IKVStore is the per-profile key-value store, the server-side counterpart
// of the browser's localStorage. Values are JSON-serialized; Get never
// fails the caller's flow — missing or corrupt data reads as absent. Writes
// replace whole values (last write wins, no transactions across keys).
type IKVStore interface {
	// Get unmarshals the value for (profileID, key) into dest and reports
	// whether a usable value existed.
	Get(ctx context.Context, profileID, key string, dest any) bool
	Set(ctx context.Context, profileID, key string, value any) error
	Remove(ctx context.Context, profileID, key string) error
}

// KVRepository is the GORM-backed IKVStore.
type KVRepository struct {
	db *gorm.DB
}

// NewKVRepository creates a KVRepository on db.
func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(ctx context.Context, profileID, key string, dest any) bool {
	var entry models.KVEntry
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND key = ?", profileID, key).
		First(&entry).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			configslog.Log.Error("kv get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		// Corrupt data is treated as absent, never propagated.
		configslog.Log.Warn("kv value corrupt, treating as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *KVRepository) Set(ctx context.Context, profileID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := models.KVEntry{ProfileID: profileID, Key: key, Value: string(raw)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *KVRepository) Remove(ctx context.Context, profileID, key string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ? AND key = ?", profileID, key).
		Delete(&models.KVEntry{}).Error
}

var _ IKVStore = (*KVRepository)(nil)
