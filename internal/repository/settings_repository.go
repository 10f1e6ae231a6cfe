package repository

import (
	"errors"

	"Shelved/internal/models"

	"gorm.io/gorm"
)

const defaultReminderFreqMinutes = 180

type SettingsRepository interface {
	Get() (*models.Settings, error)
	Upsert(adminEmail string, reminderFreqMinutes int) (*models.Settings, error)
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) Get() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Settings{ID: 1, ReminderFreqMinutes: defaultReminderFreqMinutes}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepositoryImpl) Upsert(adminEmail string, reminderFreqMinutes int) (*models.Settings, error) {
	settings := &models.Settings{
		ID:                  1,
		AdminEmail:          adminEmail,
		ReminderFreqMinutes: reminderFreqMinutes,
	}
	if err := r.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
