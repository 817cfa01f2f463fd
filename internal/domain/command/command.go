package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// ParseCommand turns chat text into an action. A leading slash and a Telegram
// bot mention ("/pagi@jadwal_bot") are ignored. A bare word that is not a known
// command is taken as a shift name to activate; the service rejects unknown shifts.
func ParseCommand(text string) (entity.Action, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return entity.Action{Kind: entity.ActionShowMenu}, nil
	}

	name := strings.TrimPrefix(parts[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	name = strings.ToLower(name)
	args := parts[1:]

	switch name {
	case "start", "menu":
		return noArgs(entity.ActionShowMenu, text, args)
	case "help", "bantuan":
		return noArgs(entity.ActionHelp, text, args)
	case "on", "aktif":
		return shiftArg(entity.ActionActivate, text, args)
	case "off", "stop":
		return shiftArg(entity.ActionDisarm, text, args)
	case "status", "cek":
		if len(args) == 0 {
			return entity.Action{Kind: entity.ActionShowShift}, nil
		}
		return shiftArg(entity.ActionShowShift, text, args)
	case "reset":
		if len(args) == 0 {
			return entity.Action{Kind: entity.ActionReset}, nil
		}
		return shiftArg(entity.ActionReset, text, args)
	case "done", "selesai":
		return parseDone(text, args)
	case "remind", "ingat":
		return parseRemind(text, args)
	case "":
		return entity.Action{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, text)
	}

	if len(args) != 0 {
		return entity.Action{}, fmt.Errorf("%w: unknown command %q", domain.ErrInvalidAction, name)
	}
	return entity.Action{Kind: entity.ActionActivate, Shift: entity.Shift(name)}, nil
}

func noArgs(kind entity.ActionKind, text string, args []string) (entity.Action, error) {
	if len(args) != 0 {
		return entity.Action{}, fmt.Errorf("%w: %q takes no arguments", domain.ErrInvalidAction, text)
	}
	return entity.Action{Kind: kind}, nil
}

func shiftArg(kind entity.ActionKind, text string, args []string) (entity.Action, error) {
	if len(args) != 1 {
		return entity.Action{}, fmt.Errorf("%w: %q needs exactly one shift", domain.ErrInvalidAction, text)
	}
	return entity.Action{Kind: kind, Shift: entity.Shift(strings.ToLower(args[0]))}, nil
}

// parseDone reads "done <shift> <n>" where n is the 1-based position shown in the checklist
func parseDone(text string, args []string) (entity.Action, error) {
	if len(args) != 2 {
		return entity.Action{}, fmt.Errorf("%w: %q, use done <shift> <number>", domain.ErrInvalidAction, text)
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return entity.Action{}, fmt.Errorf("%w: %q is not an entry number", domain.ErrInvalidEntry, args[1])
	}

	return entity.Action{
		Kind:    entity.ActionToggleEntry,
		Shift:   entity.Shift(strings.ToLower(args[0])),
		EntryID: entity.EntryID(n - 1),
	}, nil
}

// parseRemind reads "remind HH:MM free text"
func parseRemind(text string, args []string) (entity.Action, error) {
	if len(args) == 0 {
		return entity.Action{}, fmt.Errorf("%w: %q, use remind HH:MM <text>", domain.ErrInvalidAction, text)
	}

	at, err := entity.ParseTimeOfDay(args[0])
	if err != nil {
		return entity.Action{}, err
	}

	message := strings.Join(args[1:], " ")
	if message == "" {
		return entity.Action{}, fmt.Errorf("%w: reminder text is empty", domain.ErrInvalidAction)
	}

	return entity.Action{Kind: entity.ActionRemind, Time: at, Text: message}, nil
}
