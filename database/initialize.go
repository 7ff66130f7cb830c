package database

import (
	"redhatters.link/configs/configslog"
	"redhatters.link/database/migrations"
	"redhatters.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and seeders in one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Failed to begin database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization panicked", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Rolling back after initialization error.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrations finished.")
	} else {
		configslog.SLog.Info("Migrate flag not set, skipping migrations.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders finished.")
	} else {
		configslog.SLog.Info("Seed flag not set, skipping seeders.")
	}

	configslog.SLog.Info("Committing...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization completed successfully")
}

// RunMigrationsInOrder migrates the tables in dependency order.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Running KV migrations...")
	if err := migrations.MigrateKVTable(db); err != nil {
		configslog.Log.Error("kv_entries migration failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Running credential migrations...")
	if err := migrations.MigrateCredentialsTable(db); err != nil {
		configslog.Log.Error("demo_credentials migration failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Running form migrations...")
	if err := migrations.MigrateFormsTable(db); err != nil {
		configslog.Log.Error("form_submissions migration failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

// CheckAndRunSeeders runs the idempotent seeders.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Running demo credential seeder...")
	if err := seeders.SeedDemoCredentials(db); err != nil {
		configslog.Log.Error("Demo credential seeding failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All seeders checked/ran successfully.")
	return nil
}
