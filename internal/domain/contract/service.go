package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// ReminderService is what inbound transports drive on behalf of a user
type ReminderService interface {
	Shifts() []entity.Shift
	ShiftTitle(shift entity.Shift) string
	Activate(ctx context.Context, userID string, shift entity.Shift) (int, error)
	Deactivate(ctx context.Context, userID string, shift entity.Shift) error
	ToggleEntry(ctx context.Context, userID string, shift entity.Shift, id entity.EntryID) (bool, error)
	Status(userID string, shift entity.Shift) (entity.ShiftStatus, error)
	ArmedShifts(userID string) []entity.Shift
	ResetShift(ctx context.Context, userID string, shift entity.Shift) error
	ResetUser(ctx context.Context, userID string) error
	RemindAt(ctx context.Context, userID string, at entity.TimeOfDay, text string) (entity.ScheduledTimer, error)
}
