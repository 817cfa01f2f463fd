package entity

import "time"

// Activation is a persisted "shift is armed for user" row
type Activation struct {
	UserID    string
	Shift     Shift
	CreatedAt time.Time
}

// Completion is a persisted "entry is done for user" row
type Completion struct {
	UserID    string
	Shift     Shift
	EntryID   EntryID
	CreatedAt time.Time
}

// Snapshot is the complete persisted activation and completion state
type Snapshot struct {
	Activations []Activation
	Completions []Completion
}

func (s *Snapshot) IsEmpty() bool {
	return s == nil || (len(s.Activations) == 0 && len(s.Completions) == 0)
}
