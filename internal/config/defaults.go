package config

import (
	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"transport": TransportTelegram,
		"port":      "3000",
		"timezone":  domain.DefaultTimezone,
		"log": map[string]interface{}{
			"level":       "info",
			"development": false,
		},
		"slack": map[string]interface{}{
			"bot_token":      "",
			"signing_secret": "",
		},
		"telegram": map[string]interface{}{
			"bot_token":   "",
			"mode":        TelegramModePolling,
			"webhook_url": "",
		},
		"database": map[string]interface{}{
			"driver": DriverSQLite,
			"path":   "./reminder.db",
			"url":    "",
		},
		"catalog": map[string]interface{}{
			"path": "", // empty selects the embedded catalog
		},
		"reminder": map[string]interface{}{
			"lead_minutes":            0,
			"keep_exact":              true,
			"reset_time":              domain.DefaultResetTime,
			"reset_clears_activation": false,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "./config.yaml"
}
