package postgres

import (
	"context"

	"adpulse/internal/domain/repository"
	"adpulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// FindSettings returns the stored values for keys.
func (repo *settingRepository) FindSettings(ctx context.Context, keys ...string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	var settingModels []*model.SettingModel
	if err := repo.db.WithContext(ctx).
		Where("key IN ?", keys).
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	for _, settingM := range settingModels {
		values[settingM.Key] = settingM.Value
	}

	return values, nil
}
