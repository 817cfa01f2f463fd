package service

import (
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 3, day, hour, minute, 0, 0, wib)
}

func Test_nextOccurrence(t *testing.T) {
	tests := []struct {
		name string
		tod  entity.TimeOfDay
		now  time.Time
		want time.Time
	}{
		{
			name: "Should return today if time hasn't passed",
			tod:  entity.TimeOfDay{Hour: 7},
			now:  at(10, 6, 58),
			want: at(10, 7, 0),
		},
		{
			name: "Should return tomorrow if time has passed",
			tod:  entity.TimeOfDay{Hour: 7},
			now:  at(10, 7, 30),
			want: at(11, 7, 0),
		},
		{
			name: "Should return tomorrow if time is exactly now",
			tod:  entity.TimeOfDay{Hour: 7},
			now:  at(10, 7, 0),
			want: at(11, 7, 0),
		},
		{
			name: "Should roll over midnight",
			tod:  entity.TimeOfDay{Minute: 5},
			now:  at(10, 23, 50),
			want: at(11, 0, 5),
		},
		{
			name: "Should roll over the end of the month",
			tod:  entity.TimeOfDay{Hour: 1},
			now:  at(31, 2, 0),
			want: time.Date(2024, 4, 1, 1, 0, 0, 0, wib),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextOccurrence(tt.tod, tt.now))
		})
	}
}

func Test_minusMinutes(t *testing.T) {
	assert.Equal(t, entity.TimeOfDay{Hour: 6, Minute: 55}, minusMinutes(entity.TimeOfDay{Hour: 7}, 5))
	assert.Equal(t, entity.TimeOfDay{Hour: 23, Minute: 57}, minusMinutes(entity.TimeOfDay{Minute: 2}, 5))
	assert.Equal(t, entity.TimeOfDay{Hour: 22, Minute: 0}, minusMinutes(entity.TimeOfDay{Hour: 0}, 120))
	assert.Equal(t, entity.TimeOfDay{Hour: 7}, minusMinutes(entity.TimeOfDay{Hour: 7}, 0))
}

func Test_reminderScheduler_plan(t *testing.T) {
	tod := entity.TimeOfDay{Hour: 7}

	tests := []struct {
		name      string
		lead      int
		keepExact bool
		now       time.Time
		warned    time.Time
		want      []firePlan
	}{
		{
			name: "Should plan only the exact time without lead",
			now:  at(10, 6, 0),
			want: []firePlan{{kind: entity.TimerExact, at: at(10, 7, 0)}},
		},
		{
			name:      "Should plan heads-up and exact time when keeping exact",
			lead:      5,
			keepExact: true,
			now:       at(10, 6, 0),
			want: []firePlan{
				{kind: entity.TimerHeadsUp, at: at(10, 6, 55)},
				{kind: entity.TimerExact, at: at(10, 7, 0)},
			},
		},
		{
			name: "Should replace the exact time with the heads-up",
			lead: 5,
			now:  at(10, 6, 0),
			want: []firePlan{{kind: entity.TimerHeadsUp, at: at(10, 6, 55)}},
		},
		{
			name: "Should fall back to the exact time inside the lead window",
			lead: 5,
			now:  at(10, 6, 58),
			want: []firePlan{
				{kind: entity.TimerHeadsUp, at: at(11, 6, 55)},
				{kind: entity.TimerExact, at: at(10, 7, 0)},
			},
		},
		{
			name:   "Should not fall back to the exact time when its heads-up already fired",
			lead:   5,
			now:    at(10, 6, 58),
			warned: at(10, 7, 0),
			want:   []firePlan{{kind: entity.TimerHeadsUp, at: at(11, 6, 55)}},
		},
		{
			name:      "Should move the missed heads-up to tomorrow when keeping exact",
			lead:      5,
			keepExact: true,
			now:       at(10, 6, 58),
			want: []firePlan{
				{kind: entity.TimerHeadsUp, at: at(11, 6, 55)},
				{kind: entity.TimerExact, at: at(10, 7, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &reminderScheduler{leadMinutes: tt.lead, keepExact: tt.keepExact}
			assert.Equal(t, tt.want, s.plan(tod, tt.now, tt.warned))
		})
	}
}

func TestArm_ThenDisarmLeavesNoTimers(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	for _, shift := range cat.Shifts() {
		t.Run(string(shift), func(t *testing.T) {
			env, ctrl := newServiceTestMock(t, cat, at(10, 12, 0), Options{}, false)
			defer ctrl.Finish()

			entries, err := cat.Entries(shift)
			require.NoError(t, err)

			count, err := env.svc.scheduler.Arm("U1", shift)
			require.NoError(t, err)
			assert.Equal(t, len(entries), count)
			assert.Len(t, env.timers.pending(), len(entries))

			require.NoError(t, env.svc.scheduler.Disarm("U1", shift))
			assert.Empty(t, env.svc.scheduler.Outstanding("U1", shift))
			assert.Empty(t, env.timers.pending())
			assert.False(t, env.svc.activation.IsArmed("U1", shift))
		})
	}
}

func TestArm_TwiceRegistersSingleSet(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 58), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	first := env.svc.scheduler.Outstanding("U1", "pagi")

	count, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	second := env.svc.scheduler.Outstanding("U1", "pagi")
	require.Len(t, second, 2)
	assert.Len(t, env.timers.pending(), 2)
	for i := range first {
		assert.Equal(t, first[i].FireAt, second[i].FireAt)
		assert.Equal(t, first[i].EntryID, second[i].EntryID)
	}
}

func TestArm_Rollover(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 23, 50), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "malam")
	require.NoError(t, err)

	timers := env.svc.scheduler.Outstanding("U1", "malam")
	require.Len(t, timers, 2)

	assert.Equal(t, entity.EntryID(1), timers[0].EntryID)
	assert.Equal(t, 15*time.Minute, timers[0].FireAt.Sub(env.clock.Now()))
	assert.Equal(t, at(11, 23, 0), timers[1].FireAt)
}

func TestArm_SkipsDoneEntries(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	env.svc.tracker.Toggle("U1", "pagi", 0)

	count, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	timers := env.svc.scheduler.Outstanding("U1", "pagi")
	require.Len(t, timers, 1)
	assert.Equal(t, entity.EntryID(1), timers[0].EntryID)
}

func TestArm_RegistrationFailureSkipsEntry(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	env.timers.reject = func(fireAt time.Time) bool { return fireAt.Equal(at(10, 7, 0)) }

	count, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []time.Time{at(10, 7, 5)}, env.timers.pending())
	assert.True(t, env.svc.activation.IsArmed("U1", "pagi"))
}

func TestArm_InvalidShift(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "sore")
	assert.ErrorIs(t, err, domain.ErrInvalidShift)
	assert.False(t, env.svc.activation.IsArmed("U1", "sore"))

	err = env.svc.scheduler.Disarm("U1", "sore")
	assert.ErrorIs(t, err, domain.ErrInvalidShift)
}

func TestScenario_PagiShift(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 58), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.StartDailyReset(entity.TimeOfDay{Minute: 1})
	require.NoError(t, err)

	count, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []time.Time{at(10, 7, 0), at(10, 7, 5)}, env.timers.pending())

	env.timers.advance(at(10, 7, 0))
	assert.Equal(t, []string{"⏰ 07:00 - cek phising"}, env.sent.texts())

	done, err := env.svc.ToggleEntry(t.Context(), "U1", "pagi", 1)
	require.NoError(t, err)
	assert.True(t, done)

	env.timers.advance(at(10, 7, 6))
	assert.Len(t, env.sent.texts(), 1, "completed entry must not be delivered")

	env.timers.advance(at(11, 0, 1))
	env.timers.runDaily()

	assert.False(t, env.svc.tracker.IsDone("U1", "pagi", 1))
	timers := env.svc.scheduler.Outstanding("U1", "pagi")
	require.Len(t, timers, 2)
	assert.Equal(t, at(11, 7, 0), timers[0].FireAt)
	assert.Equal(t, at(11, 7, 5), timers[1].FireAt)

	env.timers.advance(at(11, 7, 5))
	assert.Equal(t, []string{
		"⏰ 07:00 - cek phising",
		"⏰ 07:00 - cek phising",
		"⏰ 07:05 - cek link",
	}, env.sent.texts())
}

func TestFire_SuppressedWhenDoneAfterRegistration(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)

	// bypass the timer cancellation so the dispatcher has to catch it
	env.svc.tracker.Toggle("U1", "pagi", 0)

	env.timers.advance(at(10, 7, 5))
	assert.Equal(t, []string{"⏰ 07:05 - cek link"}, env.sent.texts())
}

func TestFire_SupersededGenerationIsDropped(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	key := armKey{userID: "U1", shift: "pagi"}
	oldGeneration := env.svc.scheduler.armed[key].generation

	_, err = env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)

	entry, err := env.svc.catalog.Entry("pagi", 0)
	require.NoError(t, err)

	env.svc.scheduler.fire(key, oldGeneration, entry, entity.TimerExact)

	assert.Empty(t, env.sent.texts())
	assert.Len(t, env.svc.scheduler.Outstanding("U1", "pagi"), 2)
}

func TestFire_RollsForwardToNextDay(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)

	env.timers.advance(at(10, 7, 0))

	assert.Equal(t, []time.Time{at(10, 7, 5), at(11, 7, 0)}, env.timers.pending())

	env.timers.advance(at(12, 8, 0))
	assert.Len(t, env.sent.texts(), 6)
}

func TestFire_DisarmedShiftIsSilent(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	require.NoError(t, env.svc.scheduler.Disarm("U1", "pagi"))

	env.timers.advance(at(11, 8, 0))
	assert.Empty(t, env.sent.texts())
}

func TestLead_KeepExact(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{LeadMinutes: 5, KeepExact: true}, false)
	defer ctrl.Finish()

	count, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	env.timers.advance(at(10, 7, 0))
	assert.Equal(t, []string{
		"🔔 5 menit lagi (07:00) - cek phising",
		"⏰ 07:00 - cek phising",
		"🔔 5 menit lagi (07:05) - cek link",
	}, env.sent.texts())

	assert.Equal(t, []time.Time{at(10, 7, 5), at(11, 6, 55), at(11, 7, 0), at(11, 7, 0)}, env.timers.pending())
}

func TestLead_ReplaceExact(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 58), Options{LeadMinutes: 5}, false)
	defer ctrl.Finish()

	count, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	env.timers.advance(at(10, 7, 0))
	assert.ElementsMatch(t, []string{
		"⏰ 07:00 - cek phising",
		"🔔 5 menit lagi (07:05) - cek link",
	}, env.sent.texts())

	// the fallback exact timer does not recur, only the heads-up chain does
	assert.Equal(t, []time.Time{at(11, 6, 55), at(11, 7, 0)}, env.timers.pending())
	for _, timer := range env.svc.scheduler.Outstanding("U1", "pagi") {
		assert.Equal(t, entity.TimerHeadsUp, timer.Kind)
	}
}

func TestResetDaily_ReArmsArmedPairs(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	_, err = env.svc.scheduler.Arm("U2", "malam")
	require.NoError(t, err)
	_, err = env.svc.scheduler.ToggleEntry("U1", "pagi", 0)
	require.NoError(t, err)
	env.svc.tracker.Toggle("U3", "pagi", 1)
	require.Len(t, env.svc.scheduler.Outstanding("U1", "pagi"), 1)

	env.svc.scheduler.ResetDaily()

	assert.False(t, env.svc.tracker.IsDone("U1", "pagi", 0))
	assert.False(t, env.svc.tracker.IsDone("U3", "pagi", 1))
	assert.Len(t, env.svc.scheduler.Outstanding("U1", "pagi"), 2)
	assert.Len(t, env.svc.scheduler.Outstanding("U2", "malam"), 2)
	assert.Empty(t, env.svc.scheduler.Outstanding("U3", "pagi"))
	assert.Len(t, env.timers.pending(), 4)
}

func TestResetDaily_ClearsActivationWhenConfigured(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{ResetClearsActivation: true}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)

	env.svc.scheduler.ResetDaily()

	assert.False(t, env.svc.activation.IsArmed("U1", "pagi"))
	assert.Empty(t, env.timers.pending())
}

func TestRemindAt(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	timer, err := env.svc.scheduler.RemindAt("U1", entity.TimeOfDay{Hour: 6, Minute: 30}, "minum obat")
	require.NoError(t, err)
	assert.Equal(t, at(10, 6, 30), timer.FireAt)
	assert.Equal(t, entity.TimerAdhoc, timer.Kind)

	past, err := env.svc.scheduler.RemindAt("U1", entity.TimeOfDay{Hour: 5}, "besok")
	require.NoError(t, err)
	assert.Equal(t, at(11, 5, 0), past.FireAt)

	env.timers.advance(at(10, 6, 30))
	assert.Equal(t, []string{"⏰ 06:30 - minum obat"}, env.sent.texts())
	assert.Len(t, env.timers.pending(), 1, "ad-hoc reminders do not recur")
}

func TestRemindAt_RegistrationFailure(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	env.timers.reject = func(time.Time) bool { return true }

	_, err := env.svc.scheduler.RemindAt("U1", entity.TimeOfDay{Hour: 6, Minute: 30}, "minum obat")
	assert.ErrorIs(t, err, domain.ErrTimerRegistrationFailed)
}

func TestDisarmUser(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	_, err = env.svc.scheduler.Arm("U1", "malam")
	require.NoError(t, err)
	_, err = env.svc.scheduler.Arm("U2", "pagi")
	require.NoError(t, err)
	_, err = env.svc.scheduler.RemindAt("U1", entity.TimeOfDay{Hour: 9}, "rapat")
	require.NoError(t, err)

	env.svc.scheduler.DisarmUser("U1")

	assert.Empty(t, env.svc.activation.Shifts("U1"))
	assert.Len(t, env.timers.pending(), 2)
	assert.True(t, env.svc.activation.IsArmed("U2", "pagi"))
}

func TestResetDaily_KeepsReminderDueInResetMinute(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	env, ctrl := newServiceTestMock(t, cat, at(10, 22, 0), Options{}, false)
	defer ctrl.Finish()

	_, err = env.svc.scheduler.Arm("U1", domain.ShiftMalam)
	require.NoError(t, err)

	env.timers.advance(at(11, 0, 0))
	before := len(env.sent.texts())

	// the reset job runs first in the minute it shares with "update total bonus"
	env.clock.Set(at(11, 0, 1))
	env.svc.scheduler.ResetDaily()
	env.timers.advance(at(11, 0, 2))

	assert.Equal(t, []string{"⏰ 00:01 - update total bonus"}, env.sent.texts()[before:])

	var next time.Time
	for _, timer := range env.svc.scheduler.Outstanding("U1", domain.ShiftMalam) {
		if timer.EntryID == 5 {
			next = timer.FireAt
		}
	}
	assert.Equal(t, at(12, 0, 1), next)
}

func TestResetDaily_CatchesUpEntryDueInResetMinute(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	env, ctrl := newServiceTestMock(t, cat, at(10, 22, 0), Options{}, false)
	defer ctrl.Finish()

	_, err = env.svc.scheduler.Arm("U1", domain.ShiftMalam)
	require.NoError(t, err)
	done, err := env.svc.scheduler.ToggleEntry("U1", domain.ShiftMalam, 5)
	require.NoError(t, err)
	require.True(t, done)

	env.timers.advance(at(11, 0, 1))
	before := len(env.sent.texts())

	env.svc.scheduler.ResetDaily()
	env.timers.advance(at(11, 0, 2))

	assert.Equal(t, []string{"⏰ 00:01 - update total bonus"}, env.sent.texts()[before:])
}

func TestResetDaily_KeepsPendingTimers(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)
	key := armKey{userID: "U1", shift: "pagi"}
	generation := env.svc.scheduler.armed[key].generation
	handles := env.svc.scheduler.Outstanding("U1", "pagi")

	env.svc.scheduler.ResetDaily()

	assert.Equal(t, generation, env.svc.scheduler.armed[key].generation)
	assert.Equal(t, handles, env.svc.scheduler.Outstanding("U1", "pagi"))
}

func TestLead_NoFallbackAfterHeadsUpAcrossMidnight(t *testing.T) {
	cat, err := catalog.New([]catalog.ShiftDef{
		{Name: "malam", Entries: []catalog.EntryDef{{Time: "00:03", Label: "update total bonus"}}},
	})
	require.NoError(t, err)

	env, ctrl := newServiceTestMock(t, cat, at(10, 22, 0), Options{LeadMinutes: 5}, false)
	defer ctrl.Finish()

	_, err = env.svc.scheduler.Arm("U1", "malam")
	require.NoError(t, err)

	env.timers.advance(at(11, 0, 1))
	require.Equal(t, []string{"🔔 5 menit lagi (00:03) - update total bonus"}, env.sent.texts())

	env.svc.scheduler.ResetDaily()
	_, err = env.svc.scheduler.Arm("U1", "malam")
	require.NoError(t, err)

	env.timers.advance(at(11, 0, 10))
	assert.Len(t, env.sent.texts(), 1)
	assert.Equal(t, []time.Time{at(11, 23, 58)}, env.timers.pending())
}

func TestToggleEntry_ConsistentWithConcurrentReset(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.Arm("U1", "pagi")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = env.svc.scheduler.ToggleEntry("U1", "pagi", 0)
		}()
		go func() {
			defer wg.Done()
			env.svc.scheduler.ResetDaily()
		}()
		wg.Wait()

		pending := false
		for _, timer := range env.svc.scheduler.Outstanding("U1", "pagi") {
			if timer.EntryID == 0 {
				pending = true
			}
		}
		require.Equal(t, !env.svc.tracker.IsDone("U1", "pagi", 0), pending, "iteration %d", i)
	}
}

func TestToggleEntry_UnknownEntry(t *testing.T) {
	env, ctrl := newServiceTestMock(t, twoEntryCatalog(t), at(10, 6, 0), Options{}, false)
	defer ctrl.Finish()

	_, err := env.svc.scheduler.ToggleEntry("U1", "pagi", 9)
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
	assert.False(t, env.svc.tracker.IsDone("U1", "pagi", 9))
}
