package repositories

import (
	"context"
	"errors"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICredentialRepository looks up seeded demo credentials.
type ICredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.DemoCredential, error)
}

// CredentialRepository is the GORM-backed ICredentialRepository.
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a CredentialRepository on db.
func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*models.DemoCredential, error) {
	if username == "" {
		return nil, ErrNotFound
	}
	var cred models.DemoCredential
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("credential lookup failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &cred, nil
}

var _ ICredentialRepository = (*CredentialRepository)(nil)
