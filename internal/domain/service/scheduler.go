package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

const (
	minutesPerDay = 24 * 60
	resetCatchUp  = time.Second
)

type armKey struct {
	userID string
	shift  entity.Shift
}

type timerKey struct {
	entryID entity.EntryID
	kind    entity.TimerKind
}

// armedSet is the timer registry of one armed (user, shift) pair. A fire whose
// generation no longer matches the current set belongs to an earlier arm and is dropped.
// warned holds, per entry, the exact instant whose heads-up has already fired.
type armedSet struct {
	generation uint64
	timers     map[timerKey]entity.ScheduledTimer
	warned     map[entity.EntryID]time.Time
}

func (a *armedSet) pending(id entity.EntryID) bool {
	for tk := range a.timers {
		if tk.entryID == id {
			return true
		}
	}
	return false
}

type firePlan struct {
	kind entity.TimerKind
	at   time.Time
}

// reminderScheduler turns catalog entries into concrete timer registrations
// for armed pairs and keeps them rolling from one day to the next.
type reminderScheduler struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	tracker    *completionTracker
	activation *activationState
	timers     contract.Timers
	dispatcher *dispatcher
	log        *zap.SugaredLogger
	now        func() time.Time

	leadMinutes           int
	keepExact             bool
	resetClearsActivation bool

	generation uint64
	armed      map[armKey]*armedSet
	adhoc      map[string]map[entity.TimerHandle]entity.ScheduledTimer
}

func newReminderScheduler(
	cat *catalog.Catalog,
	tracker *completionTracker,
	activation *activationState,
	timers contract.Timers,
	dispatcher *dispatcher,
	log *zap.SugaredLogger,
	opts Options,
) *reminderScheduler {
	return &reminderScheduler{
		catalog:               cat,
		tracker:               tracker,
		activation:            activation,
		timers:                timers,
		dispatcher:            dispatcher,
		log:                   log,
		now:                   opts.Now,
		leadMinutes:           opts.LeadMinutes,
		keepExact:             opts.KeepExact,
		resetClearsActivation: opts.ResetClearsActivation,
		armed:                 make(map[armKey]*armedSet),
		adhoc:                 make(map[string]map[entity.TimerHandle]entity.ScheduledTimer),
	}
}

// Arm marks the shift active for the user and registers one timer chain per
// outstanding entry. Arming an already armed pair replaces its timers.
// It returns how many timers were registered.
func (s *reminderScheduler) Arm(userID string, shift entity.Shift) (int, error) {
	entries, err := s.catalog.Entries(shift)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.armLocked(armKey{userID: userID, shift: shift}, entries, s.now()), nil
}

func (s *reminderScheduler) armLocked(key armKey, entries []entity.ScheduleEntry, now time.Time) int {
	s.activation.Set(key.userID, key.shift, true, now)

	warned := make(map[entity.EntryID]time.Time)
	if old, ok := s.armed[key]; ok {
		warned = old.warned
	}
	s.cancelLocked(key)

	s.generation++
	set := &armedSet{
		generation: s.generation,
		timers:     make(map[timerKey]entity.ScheduledTimer),
		warned:     warned,
	}
	s.armed[key] = set

	for _, entry := range entries {
		if s.tracker.IsDone(key.userID, key.shift, entry.ID) {
			continue
		}
		s.scheduleEntryLocked(key, set, entry, now)
	}

	s.log.Infow("Shift armed",
		"user_id", key.userID,
		"shift", key.shift,
		"timers", len(set.timers),
	)

	return len(set.timers)
}

// Disarm cancels every timer of the pair and clears its activation flag.
// Disarming a pair that is not armed is a no-op.
func (s *reminderScheduler) Disarm(userID string, shift entity.Shift) error {
	if !s.catalog.Has(shift) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidShift, shift)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked(armKey{userID: userID, shift: shift})
	return nil
}

// DisarmUser disarms every shift of the user and drops their ad-hoc reminders
func (s *reminderScheduler) DisarmUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.armed {
		if key.userID == userID {
			s.disarmLocked(key)
		}
	}
	s.activation.ClearUser(userID)

	for handle := range s.adhoc[userID] {
		s.timers.Cancel(handle)
	}
	delete(s.adhoc, userID)
}

// ToggleEntry flips an entry between done and not done. Marking it done drops
// its pending timers; marking it not done registers them again when the shift is armed.
func (s *reminderScheduler) ToggleEntry(userID string, shift entity.Shift, id entity.EntryID) (bool, error) {
	entry, err := s.catalog.Entry(shift, id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	done := s.tracker.Toggle(userID, shift, id)

	key := armKey{userID: userID, shift: shift}
	set, ok := s.armed[key]
	if !ok {
		return done, nil
	}

	s.cancelEntryLocked(set, id)
	if !done {
		s.scheduleEntryLocked(key, set, entry, s.now())
	}
	return done, nil
}

// ResetShift clears the user's completions of one shift and re-arms it when armed
func (s *reminderScheduler) ResetShift(userID string, shift entity.Shift) error {
	entries, err := s.catalog.Entries(shift)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.Clear(userID, shift)
	if s.activation.IsArmed(userID, shift) {
		s.armLocked(armKey{userID: userID, shift: shift}, entries, s.now())
	}
	return nil
}

// ResetDaily starts a new day: completions are cleared and every armed pair
// gets timers for the entries that had none left. Pending timers are kept, so a
// reminder due in the same minute as the reset still fires. Entries are planned
// from the start of the reset minute; one that falls due in that minute is
// registered right away. With resetClearsActivation the pairs are disarmed instead.
func (s *reminderScheduler) ResetDaily() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.ClearAll()

	now := s.now()
	pairs := s.activation.Pairs()
	added := 0
	for _, pair := range pairs {
		key := armKey{userID: pair.UserID, shift: pair.Shift}
		if s.resetClearsActivation {
			s.disarmLocked(key)
			continue
		}

		n, err := s.refreshLocked(key, now)
		if err != nil {
			s.log.Warnw("Failed to re-arm shift on daily reset", "user_id", pair.UserID, "shift", pair.Shift, "error", err)
			continue
		}
		added += n
	}

	s.log.Infow("Daily reset done",
		"pairs", len(pairs),
		"timers_added", added,
		"cleared_activation", s.resetClearsActivation,
	)
}

// refreshLocked registers the entries of an armed pair that have no pending timer
func (s *reminderScheduler) refreshLocked(key armKey, now time.Time) (int, error) {
	entries, err := s.catalog.Entries(key.shift)
	if err != nil {
		return 0, err
	}

	set, ok := s.armed[key]
	if !ok {
		return s.armLocked(key, entries, now), nil
	}

	from := now.Truncate(time.Minute).Add(-time.Nanosecond)
	before := len(set.timers)
	for _, entry := range entries {
		if set.pending(entry.ID) {
			continue
		}
		for _, plan := range s.plan(entry.Time, from, set.warned[entry.ID]) {
			if !plan.at.After(now) {
				plan.at = now.Add(resetCatchUp)
			}
			s.registerLocked(key, set, entry, plan)
		}
	}
	return len(set.timers) - before, nil
}

// Outstanding lists the pending timers of a pair ordered by fire time
func (s *reminderScheduler) Outstanding(userID string, shift entity.Shift) []entity.ScheduledTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.armed[armKey{userID: userID, shift: shift}]
	if !ok {
		return nil
	}

	timers := make([]entity.ScheduledTimer, 0, len(set.timers))
	for _, t := range set.timers {
		timers = append(timers, t)
	}
	sortTimers(timers)
	return timers
}

// RemindAt registers a one-off free text reminder at the next occurrence of at
func (s *reminderScheduler) RemindAt(userID string, at entity.TimeOfDay, text string) (entity.ScheduledTimer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fireAt := nextOccurrence(at, s.now())

	var handle entity.TimerHandle
	handle, err := s.timers.ScheduleOnce(fireAt, func() {
		s.fireAdhoc(userID, handle, at, text)
	})
	if err != nil {
		return entity.ScheduledTimer{}, fmt.Errorf("%w: %v", domain.ErrTimerRegistrationFailed, err)
	}

	timer := entity.ScheduledTimer{
		UserID:  userID,
		EntryID: -1,
		Kind:    entity.TimerAdhoc,
		FireAt:  fireAt,
		Handle:  handle,
	}
	if _, ok := s.adhoc[userID]; !ok {
		s.adhoc[userID] = make(map[entity.TimerHandle]entity.ScheduledTimer)
	}
	s.adhoc[userID][handle] = timer

	s.log.Infow("Ad-hoc reminder scheduled", "user_id", userID, "fire_at", fireAt)
	return timer, nil
}

func (s *reminderScheduler) disarmLocked(key armKey) {
	s.cancelLocked(key)
	delete(s.armed, key)
	s.activation.Set(key.userID, key.shift, false, time.Time{})
}

func (s *reminderScheduler) cancelLocked(key armKey) {
	set, ok := s.armed[key]
	if !ok {
		return
	}
	for tk, t := range set.timers {
		s.timers.Cancel(t.Handle)
		delete(set.timers, tk)
	}
}

func (s *reminderScheduler) cancelEntryLocked(set *armedSet, id entity.EntryID) {
	for _, kind := range []entity.TimerKind{entity.TimerExact, entity.TimerHeadsUp} {
		tk := timerKey{entryID: id, kind: kind}
		if t, ok := set.timers[tk]; ok {
			s.timers.Cancel(t.Handle)
			delete(set.timers, tk)
		}
	}
}

func (s *reminderScheduler) scheduleEntryLocked(key armKey, set *armedSet, entry entity.ScheduleEntry, now time.Time) {
	for _, plan := range s.plan(entry.Time, now, set.warned[entry.ID]) {
		s.registerLocked(key, set, entry, plan)
	}
}

// registerLocked hands one fire instant to the timer facility. A rejected
// registration is logged and skipped so the remaining entries still get armed.
func (s *reminderScheduler) registerLocked(key armKey, set *armedSet, entry entity.ScheduleEntry, plan firePlan) {
	generation := set.generation
	handle, err := s.timers.ScheduleOnce(plan.at, func() {
		s.fire(key, generation, entry, plan.kind)
	})
	if err != nil {
		s.log.Warnw("Skipping reminder timer",
			"user_id", key.userID,
			"shift", key.shift,
			"entry_id", entry.ID,
			"kind", plan.kind.String(),
			"fire_at", plan.at,
			"error", fmt.Errorf("%w: %v", domain.ErrTimerRegistrationFailed, err),
		)
		return
	}

	set.timers[timerKey{entryID: entry.ID, kind: plan.kind}] = entity.ScheduledTimer{
		UserID:  key.userID,
		Shift:   key.shift,
		EntryID: entry.ID,
		Kind:    plan.kind,
		FireAt:  plan.at,
		Handle:  handle,
	}
}

// plan decides which instants to register for an entry. Without a lead time
// only the exact instant is used. With a lead time the heads-up comes first;
// the exact instant is kept alongside it with keepExact, or used alone for the
// current cycle when its heads-up has already passed. warned is the exact
// instant whose heads-up already fired; that cycle gets no fallback.
func (s *reminderScheduler) plan(tod entity.TimeOfDay, now, warned time.Time) []firePlan {
	exact := firePlan{kind: entity.TimerExact, at: nextOccurrence(tod, now)}
	if s.leadMinutes <= 0 {
		return []firePlan{exact}
	}

	headsUp := firePlan{kind: entity.TimerHeadsUp, at: nextOccurrence(minusMinutes(tod, s.leadMinutes), now)}
	if s.keepExact {
		return []firePlan{headsUp, exact}
	}
	if exact.at.Before(headsUp.at) && !exact.at.Equal(warned) {
		return []firePlan{headsUp, exact}
	}
	return []firePlan{headsUp}
}

// recurs reports whether a fired timer of this kind is registered again for the next day
func (s *reminderScheduler) recurs(kind entity.TimerKind) bool {
	switch kind {
	case entity.TimerExact:
		return s.leadMinutes <= 0 || s.keepExact
	case entity.TimerHeadsUp:
		return s.leadMinutes > 0
	default:
		return false
	}
}

func (s *reminderScheduler) fire(key armKey, generation uint64, entry entity.ScheduleEntry, kind entity.TimerKind) {
	s.mu.Lock()
	set, ok := s.armed[key]
	if !ok || set.generation != generation {
		s.mu.Unlock()
		s.log.Debugw("Dropping superseded reminder timer", "user_id", key.userID, "shift", key.shift, "entry_id", entry.ID)
		return
	}

	delete(set.timers, timerKey{entryID: entry.ID, kind: kind})
	if kind == entity.TimerHeadsUp {
		set.warned[entry.ID] = nextOccurrence(entry.Time, s.now())
	}
	if s.recurs(kind) {
		tod := entry.Time
		if kind == entity.TimerHeadsUp {
			tod = minusMinutes(tod, s.leadMinutes)
		}
		s.registerLocked(key, set, entry, firePlan{kind: kind, at: nextOccurrence(tod, s.now())})
	}
	s.mu.Unlock()

	s.dispatcher.Dispatch(context.Background(), key.userID, key.shift, entry.ID, kind)
}

func (s *reminderScheduler) fireAdhoc(userID string, handle entity.TimerHandle, at entity.TimeOfDay, text string) {
	s.mu.Lock()
	_, ok := s.adhoc[userID][handle]
	if ok {
		delete(s.adhoc[userID], handle)
		if len(s.adhoc[userID]) == 0 {
			delete(s.adhoc, userID)
		}
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	s.dispatcher.DispatchAdhoc(context.Background(), userID, at, text)
}

// nextOccurrence resolves a time of day to the first instant strictly after
// now. A time that has already passed today rolls over to tomorrow.
func nextOccurrence(tod entity.TimeOfDay, now time.Time) time.Time {
	candidate := tod.On(now)
	if !candidate.After(now) {
		candidate = tod.On(now.AddDate(0, 0, 1))
	}
	return candidate
}

func minusMinutes(tod entity.TimeOfDay, minutes int) entity.TimeOfDay {
	total := ((tod.Hour*60+tod.Minute-minutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	return entity.TimeOfDay{Hour: total / 60, Minute: total % 60}
}

func sortTimers(timers []entity.ScheduledTimer) {
	sort.Slice(timers, func(i, j int) bool {
		if !timers[i].FireAt.Equal(timers[j].FireAt) {
			return timers[i].FireAt.Before(timers[j].FireAt)
		}
		if timers[i].EntryID != timers[j].EntryID {
			return timers[i].EntryID < timers[j].EntryID
		}
		return timers[i].Kind < timers[j].Kind
	})
}
