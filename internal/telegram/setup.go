package telegram

import (
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ShiftCommand describes one shift for the bot's command menu
type ShiftCommand struct {
	Name  string
	Title string
}

// Commands is the command menu shown by Telegram clients
func Commands(shifts []ShiftCommand) tgbotapi.SetMyCommandsConfig {
	commands := []tgbotapi.BotCommand{{Command: "start", Description: "Tampilkan menu shift"}}
	for _, shift := range shifts {
		commands = append(commands, tgbotapi.BotCommand{
			Command:     shift.Name,
			Description: "Aktifkan pengingat " + shift.Title,
		})
	}
	commands = append(commands,
		tgbotapi.BotCommand{Command: "status", Description: "Lihat progres checklist"},
		tgbotapi.BotCommand{Command: "reset", Description: "Matikan semua pengingat"},
		tgbotapi.BotCommand{Command: "help", Description: "Bantuan"},
	)
	return tgbotapi.NewSetMyCommands(commands...)
}

// Setup registers the command menu and selects how updates are delivered.
// An empty webhookURL removes any webhook so long polling can receive updates.
func Setup(client contract.TelegramClient, shifts []ShiftCommand, webhookURL string) error {
	if _, err := client.Request(Commands(shifts)); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	if webhookURL == "" {
		if _, err := client.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			return fmt.Errorf("failed to delete webhook: %w", err)
		}
		return nil
	}

	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("invalid webhook url: %w", err)
	}
	if _, err := client.Request(wh); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	return nil
}
