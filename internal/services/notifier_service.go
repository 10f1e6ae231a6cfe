package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"Shelved/internal/config"
	"Shelved/internal/dto"
	"Shelved/internal/repository"
)

// Notifier scans the ledger for overdue checkouts and mails the admin a
// reminder digest. The cron tick is fixed; how often a digest actually
// goes out is governed by the reminder frequency in settings, so admins
// can retune it without a restart.
type Notifier struct {
	movementRepo  repository.MovementRepository
	settingsRepo  repository.SettingsRepository
	mailer        Mailer
	logService    LogService
	configuration *config.Configuration
	running       bool
	lastSent      time.Time
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewNotifier(
	movementRepository repository.MovementRepository,
	settingsRepository repository.SettingsRepository,
	mailer Mailer,
	logService LogService,
	configuration *config.Configuration,
) *Notifier {
	return &Notifier{
		movementRepo:  movementRepository,
		settingsRepo:  settingsRepository,
		mailer:        mailer,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (n *Notifier) ForceRun() error {
	n.mutex.Lock()
	if n.running {
		n.mutex.Unlock()
		return errors.New("overdue scan is in progress")
	}
	n.running = true
	n.mutex.Unlock()

	go func() {
		defer func() {
			n.mutex.Lock()
			n.running = false
			n.mutex.Unlock()
		}()
		n.scan(true)
	}()
	return nil
}

func (n *Notifier) Start() {
	n.logService.Log.Debug("starting overdue notifier")

	cronSchedule := n.configuration.Notifier.Schedule
	_, err := n.cron.AddFunc(cronSchedule, func() {
		n.mutex.Lock()
		if n.running {
			n.mutex.Unlock()
			return
		}
		n.running = true
		n.mutex.Unlock()

		defer func() {
			n.mutex.Lock()
			n.running = false
			n.mutex.Unlock()
		}()
		n.scan(false)
	})
	if err != nil {
		n.logService.Log.WithFields(logrus.Fields{
			"job":   "notifier",
			"error": err.Error(),
		}).Error("Failed to start overdue notifier")
		return
	}
	n.cron.Start()
}

func (n *Notifier) Stop() {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.cron.Stop()
	n.logService.Log.WithFields(logrus.Fields{
		"job":    "notifier",
		"status": "stopped",
	}).Info("Overdue notifier stopped")
}

func (n *Notifier) IsRunning() bool {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.running
}

func (n *Notifier) scan(forced bool) {
	settings, err := n.settingsRepo.Get()
	if err != nil {
		n.logService.Log.WithFields(logrus.Fields{
			"job":    "notifier",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to load settings")
		return
	}
	if settings.AdminEmail == "" {
		return
	}

	now := time.Now()
	if !forced {
		freq := time.Duration(settings.ReminderFreqMinutes) * time.Minute
		n.mutex.Lock()
		due := n.lastSent.IsZero() || now.Sub(n.lastSent) >= freq
		n.mutex.Unlock()
		if !due {
			return
		}
	}

	rows, err := n.movementRepo.ClaimOverdue(now)
	if err != nil {
		n.logService.Log.WithFields(logrus.Fields{
			"job":    "notifier",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to claim overdue checkouts")
		return
	}
	if len(rows) == 0 {
		return
	}

	subject := fmt.Sprintf("%d overdue checkout(s)", len(rows))
	if err := n.mailer.Send(settings.AdminEmail, subject, overdueDigest(rows)); err != nil {
		n.logService.Log.WithFields(logrus.Fields{
			"job":    "notifier",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to send overdue reminder")
		return
	}

	n.mutex.Lock()
	n.lastSent = now
	n.mutex.Unlock()

	n.logService.Log.WithFields(logrus.Fields{
		"job":    "notifier",
		"status": "success",
		"count":  len(rows),
		"forced": forced,
	}).Info("Overdue reminder sent")
}

func overdueDigest(rows []dto.OverdueRow) string {
	var b strings.Builder
	b.WriteString("The following checkouts are past their due date:\n\n")
	for _, r := range rows {
		location := "unassigned"
		if r.SystemCode != nil && r.ShelfLabel != nil {
			location = fmt.Sprintf("%s/%s", *r.SystemCode, *r.ShelfLabel)
		}
		due := "no due date"
		if r.DueAt != nil {
			due = r.DueAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "- %s (x%d) held by %s, due %s, home %s\n",
			r.Name, r.QtyOut, r.Holder, due, location)
	}
	return b.String()
}
