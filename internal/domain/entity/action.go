package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
)

// ActionKind enumerates everything an inbound user interaction can ask for
type ActionKind string

const (
	ActionShowMenu    ActionKind = "m"
	ActionShowShift   ActionKind = "s"
	ActionToggleEntry ActionKind = "t"
	ActionActivate    ActionKind = "a"
	ActionDisarm      ActionKind = "d"
	ActionReset       ActionKind = "r"
	ActionRemind      ActionKind = "n"
	ActionHelp        ActionKind = "h"
)

// Action is the typed form of a command or button press
type Action struct {
	Kind    ActionKind
	Shift   Shift
	EntryID EntryID

	// Remind only
	Time TimeOfDay
	Text string
}

// Encode renders the action as a compact callback payload, e.g. "t:pagi:3".
// Remind actions are command-only and encode to their kind alone.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionShowShift, ActionActivate, ActionDisarm:
		return string(a.Kind) + ":" + string(a.Shift)
	case ActionToggleEntry:
		return fmt.Sprintf("%s:%s:%d", a.Kind, a.Shift, a.EntryID)
	case ActionReset:
		if a.Shift == "" {
			return string(a.Kind)
		}
		return string(a.Kind) + ":" + string(a.Shift)
	default:
		return string(a.Kind)
	}
}

// ParseAction is the inverse of Encode for every button-able action
func ParseAction(data string) (Action, error) {
	parts := strings.Split(strings.TrimSpace(data), ":")

	kind := ActionKind(parts[0])
	switch kind {
	case ActionShowMenu, ActionHelp:
		if len(parts) != 1 {
			return Action{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, data)
		}
		return Action{Kind: kind}, nil

	case ActionReset:
		switch len(parts) {
		case 1:
			return Action{Kind: kind}, nil
		case 2:
			if parts[1] == "" {
				return Action{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, data)
			}
			return Action{Kind: kind, Shift: Shift(parts[1])}, nil
		}

	case ActionShowShift, ActionActivate, ActionDisarm:
		if len(parts) == 2 && parts[1] != "" {
			return Action{Kind: kind, Shift: Shift(parts[1])}, nil
		}

	case ActionToggleEntry:
		if len(parts) != 3 || parts[1] == "" {
			break
		}
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			break
		}
		return Action{Kind: kind, Shift: Shift(parts[1]), EntryID: EntryID(idx)}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, data)
}
