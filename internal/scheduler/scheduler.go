package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler is the point-in-time job facility behind the reminder service.
// One-shot jobs are cron entries whose schedule yields a single instant.
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
	log  *zap.SugaredLogger
}

func New(loc *time.Location, log *zap.SugaredLogger) *Scheduler {
	logger := cronLogger{log: log}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
		loc: loc,
		log: log,
	}
}

func (s *Scheduler) Start() {
	s.log.Infow("Scheduler starting...", "timezone", s.loc.String())
	s.cron.Start()
}

// Stop halts the cron loop and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	s.log.Info("Scheduler stopping...")

	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out with jobs still running")
	}
}

// ScheduleOnce runs fn at fireAt and then drops the entry
func (s *Scheduler) ScheduleOnce(fireAt time.Time, fn func()) (entity.TimerHandle, error) {
	if now := time.Now().In(s.loc); !fireAt.After(now) {
		return 0, fmt.Errorf("fire time %s is not after %s", fireAt.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	var (
		id    cron.EntryID
		ready = make(chan struct{})
	)
	id = s.cron.Schedule(onceSchedule{at: fireAt}, cron.FuncJob(func() {
		fn()
		<-ready
		s.cron.Remove(id)
	}))
	close(ready)

	return entity.TimerHandle(id), nil
}

// ScheduleDaily runs fn every day at the given time in the scheduler location
func (s *Scheduler) ScheduleDaily(at entity.TimeOfDay, fn func()) (entity.TimerHandle, error) {
	spec := fmt.Sprintf("%d %d * * *", at.Minute, at.Hour)

	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return 0, fmt.Errorf("failed to add daily job %q: %w", spec, err)
	}

	return entity.TimerHandle(id), nil
}

func (s *Scheduler) Cancel(handle entity.TimerHandle) {
	s.cron.Remove(cron.EntryID(handle))
}

// onceSchedule fires a single time at `at`; the zero time tells cron there is no next run
type onceSchedule struct {
	at time.Time
}

func (o onceSchedule) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return time.Time{}
}

// cronLogger routes cron's own logging into zap
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
