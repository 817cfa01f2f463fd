package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	TransportTelegram = "telegram"
	TransportSlack    = "slack"

	TelegramModePolling = "polling"
	TelegramModeWebhook = "webhook"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// EnvPrefix namespaces the nested environment overrides, e.g.
// REMINDER_REMINDER__LEAD_MINUTES=15 sets reminder.lead_minutes
const EnvPrefix = "REMINDER_"

// plainEnv maps the well-known deployment variables onto their config keys
var plainEnv = map[string]string{
	"SLACK_BOT_TOKEN":      "slack.bot_token",
	"SLACK_SIGNING_SECRET": "slack.signing_secret",
	"TELEGRAM_BOT_TOKEN":   "telegram.bot_token",
	"DATABASE_PATH":        "database.path",
	"DATABASE_URL":         "database.url",
	"PORT":                 "port",
	"TZ_NAME":              "timezone",
}

type Config struct {
	Transport string         `koanf:"transport" validate:"oneof=telegram slack"`
	Port      string         `koanf:"port" validate:"required,numeric"`
	Timezone  string         `koanf:"timezone" validate:"required"`
	Log       LogConfig      `koanf:"log"`
	Slack     SlackConfig    `koanf:"slack"`
	Telegram  TelegramConfig `koanf:"telegram"`
	Database  DatabaseConfig `koanf:"database"`
	Catalog   CatalogConfig  `koanf:"catalog"`
	Reminder  ReminderConfig `koanf:"reminder"`
}

type LogConfig struct {
	Level       string `koanf:"level" validate:"oneof=debug info warn error"`
	Development bool   `koanf:"development"`
}

type SlackConfig struct {
	BotToken      string `koanf:"bot_token"`
	SigningSecret string `koanf:"signing_secret"`
}

type TelegramConfig struct {
	BotToken   string `koanf:"bot_token"`
	Mode       string `koanf:"mode" validate:"oneof=polling webhook"`
	WebhookURL string `koanf:"webhook_url" validate:"omitempty,url"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"oneof=sqlite postgres memory"`
	Path   string `koanf:"path"`
	URL    string `koanf:"url"`
}

type CatalogConfig struct {
	Path string `koanf:"path"`
}

type ReminderConfig struct {
	LeadMinutes           int    `koanf:"lead_minutes" validate:"min=0,max=120"`
	KeepExact             bool   `koanf:"keep_exact"`
	ResetTime             string `koanf:"reset_time" validate:"required"`
	ResetClearsActivation bool   `koanf:"reset_clears_activation"`
}

// Load layers defaults, the optional YAML file and the environment, in that order
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	for name, key := range plainEnv {
		if value := os.Getenv(name); value != "" {
			if err := k.Set(key, value); err != nil {
				return nil, fmt.Errorf("failed to apply %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Transport {
	case TransportSlack:
		if c.Slack.BotToken == "" || c.Slack.SigningSecret == "" {
			return fmt.Errorf("slack transport requires SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET")
		}
	case TransportTelegram:
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram transport requires TELEGRAM_BOT_TOKEN")
		}
		if c.Telegram.Mode == TelegramModeWebhook && c.Telegram.WebhookURL == "" {
			return fmt.Errorf("telegram webhook mode requires telegram.webhook_url")
		}
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("sqlite driver requires DATABASE_PATH")
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("postgres driver requires DATABASE_URL")
		}
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := c.ResetAt(); err != nil {
		return fmt.Errorf("invalid reminder.reset_time: %w", err)
	}

	return nil
}

// Location resolves the single process timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ResetAt is the time of day of the daily completion reset
func (c *Config) ResetAt() (entity.TimeOfDay, error) {
	return entity.ParseTimeOfDay(c.Reminder.ResetTime)
}

// WebhookURL is where Telegram should deliver updates, including the token path
func (c *Config) WebhookURL() string {
	return strings.TrimRight(c.Telegram.WebhookURL, "/") + "/telegram/" + c.Telegram.BotToken
}
