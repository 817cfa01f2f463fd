package telegram

import (
	"fmt"
	"strconv"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Keyboard renders the reply's button rows as an inline keyboard whose
// callback data is the encoded action
func Keyboard(reply entity.Reply) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reply.Buttons))
	for _, row := range reply.Buttons {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Action.Encode()))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func newMessage(chatID int64, reply entity.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.HasButtons() {
		msg.ReplyMarkup = Keyboard(reply)
	}
	return msg
}

func editMessage(chatID int64, messageID int, reply entity.Reply) tgbotapi.EditMessageTextConfig {
	if reply.HasButtons() {
		return tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, reply.Text, Keyboard(reply))
	}
	return tgbotapi.NewEditMessageText(chatID, messageID, reply.Text)
}

// ChatID parses a user id issued by this transport
func ChatID(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a telegram chat id", domain.ErrDeliveryFailed, userID)
	}
	return id, nil
}

// UserID is the inverse of ChatID
func UserID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
