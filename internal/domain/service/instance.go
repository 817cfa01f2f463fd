package service

import (
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// Options tunes how reminders are scheduled
type Options struct {
	// LeadMinutes sends a heads-up this many minutes before each entry. Zero disables it.
	LeadMinutes int
	// KeepExact keeps the on-time reminder next to the heads-up
	KeepExact bool
	// ResetClearsActivation disarms every shift on the daily reset instead of re-arming it
	ResetClearsActivation bool
	Location              *time.Location
	// Now overrides the clock, mostly for tests
	Now func() time.Time
}

type Instance struct {
	Reminder *reminderService
}

// NewInstance wires the reminder service. dm may be nil, in which case state lives only in memory.
func NewInstance(cat *catalog.Catalog, dm contract.DataManager, timers contract.Timers, messenger contract.Messenger, log *zap.SugaredLogger, opts Options) *Instance {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		loc := opts.Location
		opts.Now = func() time.Time { return time.Now().In(loc) }
	}

	return &Instance{
		Reminder: newReminderService(cat, dm, timers, messenger, log, opts),
	}
}
