package contract

//go:generate mockgen -source=timers.go -destination=../../../mocks/mock_timers.go -package=mocks

import (
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// Timers is the external point-in-time job facility
type Timers interface {
	// ScheduleOnce runs fn once at fireAt. Instants that are not in the future are rejected.
	ScheduleOnce(fireAt time.Time, fn func()) (entity.TimerHandle, error)
	// ScheduleDaily runs fn every day at the given local time of day.
	ScheduleDaily(at entity.TimeOfDay, fn func()) (entity.TimerHandle, error)
	Cancel(handle entity.TimerHandle)
}
