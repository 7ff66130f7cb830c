package migrations

import (
	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateKVTable creates/updates the per-profile key-value table.
func MigrateKVTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating kv_entries table...")
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		configslog.Log.Error("Failed to migrate kv_entries table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("kv_entries table migrated successfully")
	return nil
}
