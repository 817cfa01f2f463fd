package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type dispatchResult int

const (
	dispatchSent dispatchResult = iota
	dispatchSkippedInactive
	dispatchSkippedDone
	dispatchSkippedUnknown
	dispatchFailed
)

// dispatcher delivers a fired timer to the user unless the shift was disarmed
// or the entry was completed in the meantime.
type dispatcher struct {
	catalog     *catalog.Catalog
	tracker     *completionTracker
	activation  *activationState
	messenger   contract.Messenger
	log         *zap.SugaredLogger
	leadMinutes int
}

func newDispatcher(cat *catalog.Catalog, tracker *completionTracker, activation *activationState, messenger contract.Messenger, log *zap.SugaredLogger, leadMinutes int) *dispatcher {
	return &dispatcher{
		catalog:     cat,
		tracker:     tracker,
		activation:  activation,
		messenger:   messenger,
		log:         log,
		leadMinutes: leadMinutes,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, userID string, shift entity.Shift, id entity.EntryID, kind entity.TimerKind) dispatchResult {
	if !d.activation.IsArmed(userID, shift) {
		d.log.Debugw("Reminder suppressed, shift not armed", "user_id", userID, "shift", shift, "entry_id", id)
		return dispatchSkippedInactive
	}
	if d.tracker.IsDone(userID, shift, id) {
		d.log.Debugw("Reminder suppressed, entry done", "user_id", userID, "shift", shift, "entry_id", id)
		return dispatchSkippedDone
	}

	entry, err := d.catalog.Entry(shift, id)
	if err != nil {
		d.log.Warnw("Reminder for unknown entry", "user_id", userID, "shift", shift, "entry_id", id, "error", err)
		return dispatchSkippedUnknown
	}

	reply := entity.Reply{
		Text: reminderText(entry, kind, d.leadMinutes),
		Buttons: [][]entity.Button{
			{{Label: "✅ Selesai", Action: entity.Action{Kind: entity.ActionToggleEntry, Shift: shift, EntryID: id}}},
			{{Label: "📋 " + d.catalog.Title(shift), Action: entity.Action{Kind: entity.ActionShowShift, Shift: shift}}},
		},
	}

	return d.send(ctx, userID, reply, "shift", shift, "entry_id", id, "kind", kind.String())
}

func (d *dispatcher) DispatchAdhoc(ctx context.Context, userID string, at entity.TimeOfDay, text string) dispatchResult {
	reply := entity.Reply{Text: fmt.Sprintf("⏰ %s - %s", at, text)}
	return d.send(ctx, userID, reply, "kind", entity.TimerAdhoc.String())
}

func (d *dispatcher) send(ctx context.Context, userID string, reply entity.Reply, fields ...any) dispatchResult {
	if err := d.messenger.Send(ctx, userID, reply); err != nil {
		args := append([]any{"user_id", userID, "error", fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)}, fields...)
		d.log.Warnw("Failed to deliver reminder", args...)
		return dispatchFailed
	}

	d.log.Infow("Reminder delivered", append([]any{"user_id", userID}, fields...)...)
	return dispatchSent
}

func reminderText(entry entity.ScheduleEntry, kind entity.TimerKind, leadMinutes int) string {
	if kind == entity.TimerHeadsUp {
		return fmt.Sprintf("🔔 %d menit lagi (%s) - %s", leadMinutes, entry.Time, entry.Label)
	}
	return fmt.Sprintf("⏰ %s - %s", entry.Time, entry.Label)
}
