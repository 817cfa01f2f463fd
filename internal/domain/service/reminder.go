package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type reminderService struct {
	catalog    *catalog.Catalog
	tracker    *completionTracker
	activation *activationState
	scheduler  *reminderScheduler
	timers     contract.Timers
	dm         contract.DataManager
	log        *zap.SugaredLogger
	now        func() time.Time

	persistMu sync.Mutex
}

func newReminderService(
	cat *catalog.Catalog,
	dm contract.DataManager,
	timers contract.Timers,
	messenger contract.Messenger,
	log *zap.SugaredLogger,
	opts Options,
) *reminderService {
	tracker := newCompletionTracker()
	activation := newActivationState()
	dispatcher := newDispatcher(cat, tracker, activation, messenger, log, opts.LeadMinutes)

	return &reminderService{
		catalog:    cat,
		tracker:    tracker,
		activation: activation,
		scheduler:  newReminderScheduler(cat, tracker, activation, timers, dispatcher, log, opts),
		timers:     timers,
		dm:         dm,
		log:        log,
		now:        opts.Now,
	}
}

func (s *reminderService) Shifts() []entity.Shift {
	return s.catalog.Shifts()
}

func (s *reminderService) ShiftTitle(shift entity.Shift) string {
	return s.catalog.Title(shift)
}

func (s *reminderService) Activate(ctx context.Context, userID string, shift entity.Shift) (int, error) {
	count, err := s.scheduler.Arm(userID, shift)
	if err != nil {
		return 0, err
	}

	s.persist(ctx)
	return count, nil
}

func (s *reminderService) Deactivate(ctx context.Context, userID string, shift entity.Shift) error {
	if err := s.scheduler.Disarm(userID, shift); err != nil {
		return err
	}

	s.persist(ctx)
	return nil
}

// ToggleEntry flips an entry between done and not done. Marking it done drops
// its pending timers; marking it not done registers them again when the shift is armed.
func (s *reminderService) ToggleEntry(ctx context.Context, userID string, shift entity.Shift, id entity.EntryID) (bool, error) {
	done, err := s.scheduler.ToggleEntry(userID, shift, id)
	if err != nil {
		return false, err
	}

	s.persist(ctx)
	return done, nil
}

func (s *reminderService) Status(userID string, shift entity.Shift) (entity.ShiftStatus, error) {
	entries, err := s.catalog.Entries(shift)
	if err != nil {
		return entity.ShiftStatus{}, err
	}

	status := entity.ShiftStatus{
		Shift: shift,
		Title: s.catalog.Title(shift),
		Armed: s.activation.IsArmed(userID, shift),
		Items: make([]entity.ChecklistItem, 0, len(entries)),
	}
	for _, entry := range entries {
		status.Items = append(status.Items, entity.ChecklistItem{
			Entry: entry,
			Done:  s.tracker.IsDone(userID, shift, entry.ID),
		})
	}

	return status, nil
}

// ArmedShifts returns the user's armed shifts in catalog order
func (s *reminderService) ArmedShifts(userID string) []entity.Shift {
	var shifts []entity.Shift
	for _, shift := range s.catalog.Shifts() {
		if s.activation.IsArmed(userID, shift) {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}

// ResetShift clears the user's completions of one shift and re-arms it if it was armed
func (s *reminderService) ResetShift(ctx context.Context, userID string, shift entity.Shift) error {
	if err := s.scheduler.ResetShift(userID, shift); err != nil {
		return err
	}

	s.persist(ctx)
	return nil
}

// ResetUser disarms everything the user armed, including ad-hoc reminders, and clears their completions
func (s *reminderService) ResetUser(ctx context.Context, userID string) error {
	s.scheduler.DisarmUser(userID)
	s.tracker.Clear(userID)

	s.persist(ctx)
	return nil
}

func (s *reminderService) RemindAt(ctx context.Context, userID string, at entity.TimeOfDay, text string) (entity.ScheduledTimer, error) {
	return s.scheduler.RemindAt(userID, at, text)
}

// ResetDaily clears the day's completions for everyone and re-arms the armed pairs
func (s *reminderService) ResetDaily(ctx context.Context) {
	s.scheduler.ResetDaily()
	s.persist(ctx)
}

// StartDailyReset registers ResetDaily with the timer facility
func (s *reminderService) StartDailyReset(at entity.TimeOfDay) (entity.TimerHandle, error) {
	handle, err := s.timers.ScheduleDaily(at, func() {
		s.ResetDaily(context.Background())
	})
	if err != nil {
		return 0, fmt.Errorf("%w: daily reset at %s: %v", domain.ErrTimerRegistrationFailed, at, err)
	}

	s.log.Infow("Daily reset scheduled", "at", at.String())
	return handle, nil
}

// Restore loads the persisted snapshot and re-arms every armed pair. Rows
// that reference shifts or entries the catalog no longer defines are dropped.
// On error the in-memory state is left untouched.
func (s *reminderService) Restore(ctx context.Context) error {
	if s.dm == nil {
		return nil
	}

	activations, err := s.dm.Activation().List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceCorrupt, err)
	}
	completions, err := s.dm.Completion().List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceCorrupt, err)
	}

	validActivations := make([]entity.Activation, 0, len(activations))
	for _, a := range activations {
		if !s.catalog.Has(a.Shift) {
			continue
		}
		validActivations = append(validActivations, a)
	}

	validCompletions := make([]entity.Completion, 0, len(completions))
	for _, c := range completions {
		if _, err := s.catalog.Entry(c.Shift, c.EntryID); err != nil {
			continue
		}
		validCompletions = append(validCompletions, c)
	}

	s.activation.restore(validActivations)
	s.tracker.restore(validCompletions)

	for _, pair := range s.activation.Pairs() {
		if _, err := s.scheduler.Arm(pair.UserID, pair.Shift); err != nil {
			s.log.Warnw("Failed to re-arm restored shift", "user_id", pair.UserID, "shift", pair.Shift, "error", err)
		}
	}

	s.log.Infow("Reminder state restored",
		"activations", len(validActivations),
		"completions", len(validCompletions),
		"dropped", len(activations)-len(validActivations)+len(completions)-len(validCompletions),
	)
	return nil
}

// persist writes the full snapshot after a mutation. A failed write is logged
// and the in-memory state stays authoritative.
func (s *reminderService) persist(ctx context.Context) {
	if s.dm == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	activations := s.activation.snapshot()
	completions := s.tracker.snapshot(s.now())

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Activation().DeleteAll(ctx); err != nil {
			return err
		}
		if err := tx.Completion().DeleteAll(ctx); err != nil {
			return err
		}
		for _, a := range activations {
			if err := tx.Activation().Insert(ctx, a); err != nil {
				return err
			}
		}
		for _, c := range completions {
			if err := tx.Completion().Insert(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Errorw("Failed to persist reminder state", "error", err)
	}
}
