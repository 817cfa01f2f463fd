package telegram

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

// Messenger delivers replies to the private chat a user talks to the bot from
type Messenger struct {
	client contract.TelegramClient
}

func NewMessenger(client contract.TelegramClient) *Messenger {
	return &Messenger{client: client}
}

func (m *Messenger) Send(ctx context.Context, userID string, reply entity.Reply) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: telegram send to %s: %w", domain.ErrDeliveryFailed, userID, err)
	}

	chatID, err := ChatID(userID)
	if err != nil {
		return err
	}

	if _, err := m.client.Send(newMessage(chatID, reply)); err != nil {
		return fmt.Errorf("%w: telegram send to %d: %v", domain.ErrDeliveryFailed, chatID, err)
	}

	return nil
}
