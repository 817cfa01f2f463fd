package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/shift-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var wib = time.FixedZone("WIB", 7*60*60)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fakeTimer struct {
	at time.Time
	fn func()
}

// fakeTimers is an in-memory timer facility driven by fakeClock
type fakeTimers struct {
	mu     sync.Mutex
	clock  *fakeClock
	next   entity.TimerHandle
	once   map[entity.TimerHandle]fakeTimer
	daily  map[entity.TimerHandle]func()
	reject func(at time.Time) bool
}

func newFakeTimers(clock *fakeClock) *fakeTimers {
	return &fakeTimers{
		clock: clock,
		once:  make(map[entity.TimerHandle]fakeTimer),
		daily: make(map[entity.TimerHandle]func()),
	}
}

func (f *fakeTimers) ScheduleOnce(at time.Time, fn func()) (entity.TimerHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !at.After(f.clock.Now()) {
		return 0, errors.New("fire time is not in the future")
	}
	if f.reject != nil && f.reject(at) {
		return 0, errors.New("rejected")
	}

	f.next++
	f.once[f.next] = fakeTimer{at: at, fn: fn}
	return f.next, nil
}

func (f *fakeTimers) ScheduleDaily(_ entity.TimeOfDay, fn func()) (entity.TimerHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	f.daily[f.next] = fn
	return f.next, nil
}

func (f *fakeTimers) Cancel(handle entity.TimerHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.once, handle)
	delete(f.daily, handle)
}

func (f *fakeTimers) pending() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	times := make([]time.Time, 0, len(f.once))
	for _, t := range f.once {
		times = append(times, t.at)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}

// advance moves the clock to `to`, firing every due timer in fire order
func (f *fakeTimers) advance(to time.Time) {
	for {
		f.mu.Lock()
		var (
			handle entity.TimerHandle
			due    fakeTimer
			found  bool
		)
		for h, t := range f.once {
			if t.at.After(to) {
				continue
			}
			if !found || t.at.Before(due.at) || (t.at.Equal(due.at) && h < handle) {
				handle, due, found = h, t, true
			}
		}
		if !found {
			f.mu.Unlock()
			break
		}
		delete(f.once, handle)
		f.mu.Unlock()

		f.clock.Set(due.at)
		due.fn()
	}
	f.clock.Set(to)
}

func (f *fakeTimers) runDaily() {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.daily))
	for _, fn := range f.daily {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// sentLog records what the mocked messenger delivered
type sentLog struct {
	mu      sync.Mutex
	replies []entity.Reply
}

func (l *sentLog) texts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	texts := make([]string, 0, len(l.replies))
	for _, r := range l.replies {
		texts = append(texts, r.Text)
	}
	return texts
}

type allMocks struct {
	mockMessenger      *mocks.MockMessenger
	mockDataManager    *mocks.MockDataManager
	mockActivationRepo *mocks.MockActivationRepo
	mockCompletionRepo *mocks.MockCompletionRepo
}

type testEnv struct {
	svc    *reminderService
	clock  *fakeClock
	timers *fakeTimers
	sent   *sentLog
	m      allMocks
}

func twoEntryCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New([]catalog.ShiftDef{
		{Name: "pagi", Entries: []catalog.EntryDef{
			{Time: "07:00", Label: "cek phising"},
			{Time: "07:05", Label: "cek link"},
		}},
		{Name: "malam", Entries: []catalog.EntryDef{
			{Time: "23:00", Label: "total depo"},
			{Time: "00:05", Label: "cek link"},
		}},
	})
	require.NoError(t, err)
	return cat
}

// newServiceTestMock builds a reminder service on fake timers. The messenger
// records every reply; persistence is only wired when withStore is set.
func newServiceTestMock(t *testing.T, cat *catalog.Catalog, start time.Time, opts Options, withStore bool) (env testEnv, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	clock := &fakeClock{now: start}
	timers := newFakeTimers(clock)
	sent := &sentLog{}

	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, reply entity.Reply) error {
			sent.mu.Lock()
			defer sent.mu.Unlock()
			sent.replies = append(sent.replies, reply)
			return nil
		}).AnyTimes()

	dm := mocks.NewMockDataManager(ctrl)
	activationRepo := mocks.NewMockActivationRepo(ctrl)
	completionRepo := mocks.NewMockCompletionRepo(ctrl)
	dm.EXPECT().Activation().Return(activationRepo).AnyTimes()
	dm.EXPECT().Completion().Return(completionRepo).AnyTimes()

	opts.Location = wib
	opts.Now = clock.Now

	var store contract.DataManager
	if withStore {
		store = dm
	}

	inst := NewInstance(cat, store, timers, messenger, zaptest.NewLogger(t).Sugar(), opts)
	require.NotNil(t, inst.Reminder)

	env = testEnv{
		svc:    inst.Reminder,
		clock:  clock,
		timers: timers,
		sent:   sent,
		m: allMocks{
			mockMessenger:      messenger,
			mockDataManager:    dm,
			mockActivationRepo: activationRepo,
			mockCompletionRepo: completionRepo,
		},
	}
	return
}
