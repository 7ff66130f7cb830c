package migrations

import (
	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCredentialsTable creates/updates the demo credentials table.
func MigrateCredentialsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating demo_credentials table...")
	if err := db.AutoMigrate(&models.DemoCredential{}); err != nil {
		configslog.Log.Error("Failed to migrate demo_credentials table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("demo_credentials table migrated successfully")
	return nil
}
