package slack

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/shift-reminder-bot/mocks"
	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleReply() entity.Reply {
	return entity.Reply{
		Text: "⏰ 07:00 - cek phising",
		Buttons: [][]entity.Button{
			{{Label: "✅ Selesai", Action: entity.Action{Kind: entity.ActionToggleEntry, Shift: "pagi", EntryID: 0}}},
			{{Label: "📋 Jadwal Pagi", Action: entity.Action{Kind: entity.ActionShowShift, Shift: "pagi"}}},
		},
	}
}

func TestMessenger_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSlackClient(ctrl)
	messenger := NewMessenger(client)

	client.EXPECT().PostMessage("U123", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, options ...goslack.MsgOption) (string, string, error) {
			_, values, err := goslack.UnsafeApplyMsgOptions("token", channelID, "https://slack.test/api/", options...)
			require.NoError(t, err)

			assert.Equal(t, "U123", values.Get("channel"))
			assert.Equal(t, "⏰ 07:00 - cek phising", values.Get("text"))

			var blocks []map[string]any
			require.NoError(t, json.Unmarshal([]byte(values.Get("blocks")), &blocks))
			require.Len(t, blocks, 3)
			assert.Equal(t, "section", blocks[0]["type"])
			assert.Equal(t, "actions", blocks[1]["type"])

			elements := blocks[1]["elements"].([]any)
			button := elements[0].(map[string]any)
			assert.Equal(t, "t:pagi:0", button["value"])
			assert.Equal(t, "act_0_0", button["action_id"])
			return "D1", "1700000000.0001", nil
		})

	err := messenger.Send(t.Context(), "U123", sampleReply())
	require.NoError(t, err)
}

func TestMessenger_SendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSlackClient(ctrl)
	messenger := NewMessenger(client)

	client.EXPECT().PostMessage("U123", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", "", errors.New("channel_not_found"))

	err := messenger.Send(t.Context(), "U123", sampleReply())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestMessenger_SendCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := NewMessenger(mocks.NewMockSlackClient(ctrl)).Send(ctx, "U123", sampleReply())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

func TestMsg(t *testing.T) {
	msg := Msg(entity.Reply{Text: "halo"})

	assert.Equal(t, goslack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Equal(t, "halo", msg.Text)
	require.Len(t, msg.Blocks.BlockSet, 1)
	assert.Equal(t, goslack.MBTSection, msg.Blocks.BlockSet[0].BlockType())

	webhook := WebhookMessage(sampleReply())
	assert.True(t, webhook.ReplaceOriginal)
	assert.Len(t, webhook.Blocks.BlockSet, 3)
}
