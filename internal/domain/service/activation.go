package service

import (
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

type armedPair struct {
	UserID string
	Shift  entity.Shift
}

// activationState holds which (user, shift) pairs are armed
type activationState struct {
	mu    sync.RWMutex
	armed map[string]map[entity.Shift]time.Time
}

func newActivationState() *activationState {
	return &activationState{
		armed: make(map[string]map[entity.Shift]time.Time),
	}
}

func (a *activationState) Set(userID string, shift entity.Shift, armed bool, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !armed {
		delete(a.armed[userID], shift)
		if len(a.armed[userID]) == 0 {
			delete(a.armed, userID)
		}
		return
	}

	shifts, ok := a.armed[userID]
	if !ok {
		shifts = make(map[entity.Shift]time.Time)
		a.armed[userID] = shifts
	}
	if _, already := shifts[shift]; !already {
		shifts[shift] = now
	}
}

func (a *activationState) IsArmed(userID string, shift entity.Shift) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.armed[userID][shift]
	return ok
}

// Shifts returns the armed shifts of a user sorted by name
func (a *activationState) Shifts(userID string) []entity.Shift {
	a.mu.RLock()
	defer a.mu.RUnlock()

	shifts := make([]entity.Shift, 0, len(a.armed[userID]))
	for shift := range a.armed[userID] {
		shifts = append(shifts, shift)
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i] < shifts[j] })
	return shifts
}

// Pairs returns every armed (user, shift) pair in a stable order
func (a *activationState) Pairs() []armedPair {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var pairs []armedPair
	for userID, shifts := range a.armed {
		for shift := range shifts {
			pairs = append(pairs, armedPair{UserID: userID, Shift: shift})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].UserID != pairs[j].UserID {
			return pairs[i].UserID < pairs[j].UserID
		}
		return pairs[i].Shift < pairs[j].Shift
	})
	return pairs
}

func (a *activationState) ClearUser(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.armed, userID)
}

func (a *activationState) snapshot() []entity.Activation {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var rows []entity.Activation
	for userID, shifts := range a.armed {
		for shift, since := range shifts {
			rows = append(rows, entity.Activation{UserID: userID, Shift: shift, CreatedAt: since})
		}
	}
	return rows
}

func (a *activationState) restore(rows []entity.Activation) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.armed = make(map[string]map[entity.Shift]time.Time)
	for _, row := range rows {
		shifts, ok := a.armed[row.UserID]
		if !ok {
			shifts = make(map[entity.Shift]time.Time)
			a.armed[row.UserID] = shifts
		}
		shifts[row.Shift] = row.CreatedAt
	}
}
