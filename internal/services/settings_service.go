package services

import (
	"strings"

	"Shelved/internal/apierror"
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

type SettingsService interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(adminEmail string, reminderFreqMinutes int) (*models.Settings, error)
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepository repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepository}
}

func (s *settingsServiceImpl) GetSettings() (*models.Settings, error) {
	return s.settingsRepo.Get()
}

func (s *settingsServiceImpl) UpdateSettings(adminEmail string, reminderFreqMinutes int) (*models.Settings, error) {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" || !strings.Contains(adminEmail, "@") {
		return nil, apierror.BadRequest("valid admin_email is required")
	}
	if reminderFreqMinutes <= 0 || reminderFreqMinutes > 1440 {
		return nil, apierror.BadRequest("reminder_freq_minutes must be between 1 and 1440")
	}
	return s.settingsRepo.Upsert(adminEmail, reminderFreqMinutes)
}
