package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/shift-reminder-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func Test_dispatcher_Dispatch(t *testing.T) {
	type args struct {
		shift entity.Shift
		id    entity.EntryID
		kind  entity.TimerKind
	}

	tests := []struct {
		name      string
		args      args
		armed     bool
		done      bool
		buildMock func(messenger *mocks.MockMessenger)
		want      dispatchResult
	}{
		{
			name:  "Should send the exact reminder with a done button",
			args:  args{shift: "pagi", id: 1, kind: entity.TimerExact},
			armed: true,
			buildMock: func(messenger *mocks.MockMessenger) {
				messenger.EXPECT().Send(gomock.Any(), "U1", entity.Reply{
					Text: "⏰ 07:05 - cek link",
					Buttons: [][]entity.Button{
						{{Label: "✅ Selesai", Action: entity.Action{Kind: entity.ActionToggleEntry, Shift: "pagi", EntryID: 1}}},
						{{Label: "📋 pagi", Action: entity.Action{Kind: entity.ActionShowShift, Shift: "pagi"}}},
					},
				}).Return(nil).Times(1)
			},
			want: dispatchSent,
		},
		{
			name:  "Should send the heads-up text",
			args:  args{shift: "pagi", id: 0, kind: entity.TimerHeadsUp},
			armed: true,
			buildMock: func(messenger *mocks.MockMessenger) {
				messenger.EXPECT().Send(gomock.Any(), "U1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, reply entity.Reply) error {
						assert.Equal(t, "🔔 5 menit lagi (07:00) - cek phising", reply.Text)
						return nil
					}).Times(1)
			},
			want: dispatchSent,
		},
		{
			name: "Should suppress when the shift is not armed",
			args: args{shift: "pagi", id: 0, kind: entity.TimerExact},
			want: dispatchSkippedInactive,
		},
		{
			name:  "Should suppress when the entry is done",
			args:  args{shift: "pagi", id: 0, kind: entity.TimerExact},
			armed: true,
			done:  true,
			want:  dispatchSkippedDone,
		},
		{
			name:  "Should suppress an entry the catalog no longer has",
			args:  args{shift: "pagi", id: 9, kind: entity.TimerExact},
			armed: true,
			want:  dispatchSkippedUnknown,
		},
		{
			name:  "Should report a delivery failure without retrying",
			args:  args{shift: "pagi", id: 0, kind: entity.TimerExact},
			armed: true,
			buildMock: func(messenger *mocks.MockMessenger) {
				messenger.EXPECT().Send(gomock.Any(), "U1", gomock.Any()).Return(errors.New("chat not found")).Times(1)
			},
			want: dispatchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			messenger := mocks.NewMockMessenger(ctrl)
			if tt.buildMock != nil {
				tt.buildMock(messenger)
			}

			tracker := newCompletionTracker()
			activation := newActivationState()
			if tt.armed {
				activation.Set("U1", tt.args.shift, true, at(10, 6, 0))
			}
			if tt.done {
				tracker.Toggle("U1", tt.args.shift, tt.args.id)
			}

			d := newDispatcher(twoEntryCatalog(t), tracker, activation, messenger, zaptest.NewLogger(t).Sugar(), 5)
			got := d.Dispatch(context.Background(), "U1", tt.args.shift, tt.args.id, tt.args.kind)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_dispatcher_DispatchAdhoc(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messenger := mocks.NewMockMessenger(ctrl)
	messenger.EXPECT().Send(gomock.Any(), "U1", entity.Reply{Text: "⏰ 13:30 - rapat"}).Return(nil).Times(1)

	d := newDispatcher(twoEntryCatalog(t), newCompletionTracker(), newActivationState(), messenger, zaptest.NewLogger(t).Sugar(), 0)
	got := d.DispatchAdhoc(context.Background(), "U1", entity.TimeOfDay{Hour: 13, Minute: 30}, "rapat")
	assert.Equal(t, dispatchSent, got)
}
