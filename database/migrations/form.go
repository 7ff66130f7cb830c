package migrations

import (
	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateFormsTable creates/updates the form submission audit table.
func MigrateFormsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating form_submissions table...")
	if err := db.AutoMigrate(&models.FormSubmission{}); err != nil {
		configslog.Log.Error("Failed to migrate form_submissions table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("form_submissions table migrated successfully")
	return nil
}
