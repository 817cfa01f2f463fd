package service

import (
	"slices"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// completionTracker records which entries each user marked done for the current day
type completionTracker struct {
	mu   sync.RWMutex
	done map[string]map[entity.Shift]mapset.Set[entity.EntryID]
}

func newCompletionTracker() *completionTracker {
	return &completionTracker{
		done: make(map[string]map[entity.Shift]mapset.Set[entity.EntryID]),
	}
}

// Toggle flips the completion of an entry and returns the new state
func (t *completionTracker) Toggle(userID string, shift entity.Shift, id entity.EntryID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	set := t.setLocked(userID, shift)
	if set.Contains(id) {
		set.Remove(id)
		t.pruneLocked(userID, shift)
		return false
	}

	set.Add(id)
	return true
}

func (t *completionTracker) IsDone(userID string, shift entity.Shift, id entity.EntryID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	set, ok := t.done[userID][shift]
	return ok && set.Contains(id)
}

// Done returns the completed entry ids of a shift in ascending order
func (t *completionTracker) Done(userID string, shift entity.Shift) []entity.EntryID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	set, ok := t.done[userID][shift]
	if !ok {
		return nil
	}

	ids := set.ToSlice()
	slices.Sort(ids)
	return ids
}

// Clear drops the user's completions for the given shifts, or all of them when none are given
func (t *completionTracker) Clear(userID string, shifts ...entity.Shift) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(shifts) == 0 {
		delete(t.done, userID)
		return
	}

	for _, shift := range shifts {
		delete(t.done[userID], shift)
	}
	if len(t.done[userID]) == 0 {
		delete(t.done, userID)
	}
}

func (t *completionTracker) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.done = make(map[string]map[entity.Shift]mapset.Set[entity.EntryID])
}

func (t *completionTracker) snapshot(now time.Time) []entity.Completion {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var rows []entity.Completion
	for userID, shifts := range t.done {
		for shift, set := range shifts {
			set.Each(func(id entity.EntryID) bool {
				rows = append(rows, entity.Completion{UserID: userID, Shift: shift, EntryID: id, CreatedAt: now})
				return false
			})
		}
	}
	return rows
}

func (t *completionTracker) restore(rows []entity.Completion) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.done = make(map[string]map[entity.Shift]mapset.Set[entity.EntryID])
	for _, row := range rows {
		t.setLocked(row.UserID, row.Shift).Add(row.EntryID)
	}
}

func (t *completionTracker) setLocked(userID string, shift entity.Shift) mapset.Set[entity.EntryID] {
	shifts, ok := t.done[userID]
	if !ok {
		shifts = make(map[entity.Shift]mapset.Set[entity.EntryID])
		t.done[userID] = shifts
	}

	set, ok := shifts[shift]
	if !ok {
		set = mapset.NewThreadUnsafeSet[entity.EntryID]()
		shifts[shift] = set
	}
	return set
}

func (t *completionTracker) pruneLocked(userID string, shift entity.Shift) {
	if set, ok := t.done[userID][shift]; ok && set.Cardinality() == 0 {
		delete(t.done[userID], shift)
	}
	if len(t.done[userID]) == 0 {
		delete(t.done, userID)
	}
}
