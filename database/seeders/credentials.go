package seeders

import (
	"errors"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// demoAccounts are the documented demo logins. Any other pair passing the
// basic length rules also works; these are the ones shown on the login page.
var demoAccounts = []struct {
	Username string
	Password string
}{
	{"demo", "password123"},
	{"testuser", "testpass"},
	{"admin", "admin123"},
	{"member", "member123"},
}

// SeedDemoCredentials creates the demo login accounts if they are missing.
func SeedDemoCredentials(db *gorm.DB) error {
	configslog.SLog.Info("Seeding demo credentials...")

	var createdCount int64
	for _, account := range demoAccounts {
		var existing models.DemoCredential
		result := db.Where("username = ?", account.Username).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Demo credential '%s' already exists, skipping.", account.Username)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Failed to check demo credential",
				zap.String("username", account.Username), zap.Error(result.Error))
			return result.Error
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			configslog.Log.Error("Failed to hash demo password",
				zap.String("username", account.Username), zap.Error(err))
			return err
		}

		credential := models.DemoCredential{Username: account.Username, PasswordHash: string(hash)}
		if err := db.Create(&credential).Error; err != nil {
			configslog.Log.Error("Failed to create demo credential",
				zap.String("username", account.Username), zap.Error(err))
			return err
		}
		createdCount++
	}

	configslog.SLog.Infof("Demo credential seeding finished (%d created).", createdCount)
	return nil
}
