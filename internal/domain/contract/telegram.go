package contract

//go:generate mockgen -source=telegram.go -destination=../../../mocks/mock_telegram.go -package=mocks

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// TelegramClient is the subset of *tgbotapi.BotAPI the bot uses
type TelegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}
