package slack

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	goslack "github.com/slack-go/slack"
)

// Messenger delivers replies as direct messages from the bot user
type Messenger struct {
	client contract.SlackClient
}

func NewMessenger(client contract.SlackClient) *Messenger {
	return &Messenger{client: client}
}

// Send posts the reply to the user's DM channel. Slack opens the IM when the
// channel is a user id.
func (m *Messenger) Send(ctx context.Context, userID string, reply entity.Reply) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: slack post to %s: %w", domain.ErrDeliveryFailed, userID, err)
	}

	_, _, err := m.client.PostMessage(
		userID,
		goslack.MsgOptionText(reply.Text, false),
		goslack.MsgOptionBlocks(Blocks(reply)...),
		goslack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("%w: slack post to %s: %v", domain.ErrDeliveryFailed, userID, err)
	}

	return nil
}
