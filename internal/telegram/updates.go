package telegram

import (
	"context"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pollTimeoutSeconds = 60

// Updates routes inbound Telegram updates and answers them. It serves both the
// webhook endpoint and long polling.
type Updates struct {
	client contract.TelegramClient
	router contract.ActionRouter
	log    *zap.SugaredLogger
}

func NewUpdates(client contract.TelegramClient, router contract.ActionRouter, log *zap.SugaredLogger) *Updates {
	return &Updates{client: client, router: router, log: log}
}

// Handle answers a single update. Button presses edit the message they were
// pressed on; text messages get a new reply.
func (u *Updates) Handle(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		u.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		u.handleMessage(ctx, update.Message)
	}
}

func (u *Updates) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	u.log.Debugw("Received message", "chat_id", chatID, "text", msg.Text)

	reply := u.router.HandleText(ctx, UserID(chatID), msg.Text)
	if _, err := u.client.Send(newMessage(chatID, reply)); err != nil {
		u.log.Warnw("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

func (u *Updates) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if _, err := u.client.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		u.log.Warnw("Failed to answer callback", "callback_id", callback.ID, "error", err)
	}

	if callback.Message == nil {
		u.log.Infow("Ignoring callback without message", "callback_id", callback.ID)
		return
	}

	chatID := callback.Message.Chat.ID
	u.log.Debugw("Received callback", "chat_id", chatID, "data", callback.Data)

	reply := u.router.HandleCallback(ctx, UserID(chatID), callback.Data)
	if _, err := u.client.Send(editMessage(chatID, callback.Message.MessageID, reply)); err != nil {
		u.log.Warnw("Failed to update message", "chat_id", chatID, "error", err)
	}
}

// Poll consumes updates by long polling until ctx is canceled
func (u *Updates) Poll(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds

	updates := u.client.GetUpdatesChan(cfg)
	u.log.Info("Telegram long polling started")

	for {
		select {
		case <-ctx.Done():
			u.client.StopReceivingUpdates()
			u.log.Info("Telegram long polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			u.Handle(ctx, update)
		}
	}
}
