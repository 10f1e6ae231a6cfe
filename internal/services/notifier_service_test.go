package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"Shelved/internal/config"
	"Shelved/internal/dto"
	"Shelved/internal/models"
)

func notifierUnderTest() (*Notifier, *MockMovementRepository, *MockSettingsRepository, *MockMailer) {
	movementRepo := new(MockMovementRepository)
	settingsRepo := new(MockSettingsRepository)
	mailer := new(MockMailer)
	cfg := &config.Configuration{Notifier: config.NotifierConfig{Schedule: "@every 1m"}}
	n := NewNotifier(movementRepo, settingsRepo, mailer, NewLogService(cfg), cfg)
	return n, movementRepo, settingsRepo, mailer
}

func overdueRows() []dto.OverdueRow {
	due := time.Now().Add(-48 * time.Hour)
	code := "SYS1"
	label := "A-1"
	return []dto.OverdueRow{
		{MovementID: 1, ItemID: 1, Name: "torque wrench", Holder: "ana", QtyOut: 1, DueAt: &due, SystemCode: &code, ShelfLabel: &label},
		{MovementID: 2, ItemID: 2, Name: "bearing", Holder: "bo", QtyOut: 3, DueAt: &due},
	}
}

func TestNotifier_SendsDigest(t *testing.T) {
	n, movementRepo, settingsRepo, mailer := notifierUnderTest()
	settingsRepo.On("Get").Return(&models.Settings{ID: 1, AdminEmail: "admin@b.si", ReminderFreqMinutes: 180}, nil)
	movementRepo.On("ClaimOverdue", mock.AnythingOfType("time.Time")).Return(overdueRows(), nil)
	mailer.On("Send", "admin@b.si", "2 overdue checkout(s)", mock.MatchedBy(func(body string) bool {
		return len(body) > 0
	})).Return(nil)

	n.scan(false)

	mailer.AssertExpectations(t)
	assert.False(t, n.lastSent.IsZero())
}

func TestNotifier_NoAdminEmailNoScan(t *testing.T) {
	n, movementRepo, settingsRepo, _ := notifierUnderTest()
	settingsRepo.On("Get").Return(&models.Settings{ID: 1, ReminderFreqMinutes: 180}, nil)

	n.scan(false)

	movementRepo.AssertNotCalled(t, "ClaimOverdue", mock.Anything)
}

func TestNotifier_PacedByReminderFrequency(t *testing.T) {
	n, movementRepo, settingsRepo, _ := notifierUnderTest()
	settingsRepo.On("Get").Return(&models.Settings{ID: 1, AdminEmail: "admin@b.si", ReminderFreqMinutes: 180}, nil)
	n.lastSent = time.Now().Add(-5 * time.Minute)

	n.scan(false)

	movementRepo.AssertNotCalled(t, "ClaimOverdue", mock.Anything)
}

func TestNotifier_ForcedScanIgnoresPacing(t *testing.T) {
	n, movementRepo, settingsRepo, mailer := notifierUnderTest()
	settingsRepo.On("Get").Return(&models.Settings{ID: 1, AdminEmail: "admin@b.si", ReminderFreqMinutes: 180}, nil)
	movementRepo.On("ClaimOverdue", mock.AnythingOfType("time.Time")).Return(overdueRows(), nil)
	mailer.On("Send", "admin@b.si", mock.Anything, mock.Anything).Return(nil)
	n.lastSent = time.Now().Add(-5 * time.Minute)

	n.scan(true)

	mailer.AssertExpectations(t)
}

func TestNotifier_NothingOverdueNoMail(t *testing.T) {
	n, movementRepo, settingsRepo, mailer := notifierUnderTest()
	settingsRepo.On("Get").Return(&models.Settings{ID: 1, AdminEmail: "admin@b.si", ReminderFreqMinutes: 180}, nil)
	movementRepo.On("ClaimOverdue", mock.AnythingOfType("time.Time")).Return([]dto.OverdueRow{}, nil)

	n.scan(false)

	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestOverdueDigest(t *testing.T) {
	body := overdueDigest(overdueRows())

	assert.Contains(t, body, "torque wrench")
	assert.Contains(t, body, "held by ana")
	assert.Contains(t, body, "SYS1/A-1")
	assert.Contains(t, body, "home unassigned")
}
