package repositories

import (
	"context"
	"errors"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormRepository persists accepted form relays for audit.
type IFormRepository interface {
	Create(ctx context.Context, submission *models.FormSubmission) error
	ListByType(ctx context.Context, formType string, limit int) ([]models.FormSubmission, error)
}

// FormRepository is the GORM-backed IFormRepository.
type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository creates a FormRepository on db.
func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

func (r *FormRepository) Create(ctx context.Context, submission *models.FormSubmission) error {
	if submission == nil || submission.FormType == "" {
		return errors.New("invalid form submission")
	}
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		configslog.Log.Error("form submission persist failed",
			zap.String("form_type", submission.FormType), zap.Error(err))
		return err
	}
	return nil
}

func (r *FormRepository) ListByType(ctx context.Context, formType string, limit int) ([]models.FormSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	var submissions []models.FormSubmission
	err := r.db.WithContext(ctx).
		Where("form_type = ?", formType).
		Order("created_at desc").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("form submission list failed", zap.String("form_type", formType), zap.Error(err))
		return nil, err
	}
	return submissions, nil
}

var _ IFormRepository = (*FormRepository)(nil)
