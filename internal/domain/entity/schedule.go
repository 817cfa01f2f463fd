package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
)

// Shift names a group of reminder entries a user arms as a unit
type Shift string

// TimeOfDay is a local civil wall-clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates hour and minute against the 24-hour clock
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", domain.ErrInvalidTimeSpec, hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay accepts H:MM or HH:MM (or the dotted form the task labels use)
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)

	sep := strings.IndexAny(value, ":.")
	if sep < 0 {
		return TimeOfDay{}, fmt.Errorf("%w: %q (use HH:MM)", domain.ErrInvalidTimeSpec, value)
	}
	hourPart, minutePart := value[:sep], value[sep+1:]
	if !isDigits(hourPart, 1, 2) || !isDigits(minutePart, 2, 2) {
		return TimeOfDay{}, fmt.Errorf("%w: %q (use HH:MM)", domain.ErrInvalidTimeSpec, value)
	}

	hour, _ := strconv.Atoi(hourPart)
	minute, _ := strconv.Atoi(minutePart)

	return NewTimeOfDay(hour, minute)
}

func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant of t on the calendar day of day, in day's location
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// EntryID is the position of an entry within its shift. Labels are not unique
// inside a shift, so completion is always keyed by (shift, EntryID).
type EntryID int

// ScheduleEntry is one immutable (time of day, label) pair of a shift
type ScheduleEntry struct {
	Shift Shift
	ID    EntryID
	Time  TimeOfDay
	Label string
}

// TimerKind distinguishes the notifications a single entry can produce
type TimerKind int

const (
	TimerExact TimerKind = iota
	TimerHeadsUp
	TimerAdhoc
)

func (k TimerKind) String() string {
	switch k {
	case TimerExact:
		return "exact"
	case TimerHeadsUp:
		return "heads-up"
	case TimerAdhoc:
		return "adhoc"
	default:
		return "unknown"
	}
}

// TimerHandle identifies a registration with the timer facility
type TimerHandle int

// ScheduledTimer is one outstanding registration owned by the reminder scheduler
type ScheduledTimer struct {
	UserID  string
	Shift   Shift
	EntryID EntryID
	Kind    TimerKind
	FireAt  time.Time
	Handle  TimerHandle
}
