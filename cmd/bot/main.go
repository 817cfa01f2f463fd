package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/config"
	"github.com/diegoclair/shift-reminder-bot/internal/database"
	"github.com/diegoclair/shift-reminder-bot/internal/database/postgres"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/catalog"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/command"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/service"
	"github.com/diegoclair/shift-reminder-bot/internal/handlers"
	"github.com/diegoclair/shift-reminder-bot/internal/logger"
	"github.com/diegoclair/shift-reminder-bot/internal/scheduler"
	slackbot "github.com/diegoclair/shift-reminder-bot/internal/slack"
	"github.com/diegoclair/shift-reminder-bot/internal/telegram"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logr, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logr.Sync()

	if err := run(cfg, logr); err != nil {
		logr.Fatalw("Bot stopped", "error", err)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	resetAt, err := cfg.ResetAt()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	dm, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	sched := scheduler.New(loc, log.Named("scheduler"))
	sched.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		sched.Stop(stopCtx)
	}()

	var (
		messenger       contract.Messenger
		slackHandler    *handlers.SlackHandler
		telegramHandler *handlers.TelegramHandler
		tgClient        *tgbotapi.BotAPI
	)

	switch cfg.Transport {
	case config.TransportSlack:
		messenger = slackbot.NewMessenger(slack.New(cfg.Slack.BotToken))
	case config.TransportTelegram:
		tgClient, err = tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			return err
		}
		log.Infow("Authorized on telegram", "username", tgClient.Self.UserName)
		messenger = telegram.NewMessenger(tgClient)
	}

	svc := service.NewInstance(cat, dm, sched, messenger, log.Named("reminder"), service.Options{
		LeadMinutes:           cfg.Reminder.LeadMinutes,
		KeepExact:             cfg.Reminder.KeepExact,
		ResetClearsActivation: cfg.Reminder.ResetClearsActivation,
		Location:              loc,
	}).Reminder

	if err := svc.Restore(ctx); err != nil {
		log.Errorw("Starting with empty state", "error", err)
	}

	if _, err := svc.StartDailyReset(resetAt); err != nil {
		return err
	}

	router := command.NewRouter(svc, log.Named("router"))

	switch cfg.Transport {
	case config.TransportSlack:
		slackHandler = handlers.NewSlackHandler(router, cfg.Slack.SigningSecret, log.Named("slack"))
	case config.TransportTelegram:
		updates := telegram.NewUpdates(tgClient, router, log.Named("telegram"))

		shifts := make([]telegram.ShiftCommand, 0, len(cat.Shifts()))
		for _, shift := range cat.Shifts() {
			shifts = append(shifts, telegram.ShiftCommand{Name: string(shift), Title: cat.Title(shift)})
		}

		webhookURL := ""
		if cfg.Telegram.Mode == config.TelegramModeWebhook {
			webhookURL = cfg.WebhookURL()
			telegramHandler = handlers.NewTelegramHandler(updates, cfg.Telegram.BotToken, log.Named("telegram"))
		}

		if err := telegram.Setup(tgClient, shifts, webhookURL); err != nil {
			log.Warnw("Failed to set up telegram bot", "error", err)
		}

		if telegramHandler == nil {
			go updates.Poll(ctx)
		}
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.Routes(log, slackHandler, telegramHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Server starting", "port", cfg.Port, "transport", cfg.Transport)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openStore selects the snapshot storage. The memory driver returns a nil
// DataManager, which keeps state in process only.
func openStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (contract.DataManager, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to postgres")
		return postgres.NewInstance(db), db.Close, nil

	case config.DriverSQLite:
		db, err := database.Open(cfg.Database.Path, log.Named("database"))
		if err != nil {
			return nil, nil, err
		}

		return database.NewInstance(db), func() { db.Close() }, nil

	default:
		log.Warn("Persistence disabled, state is lost on restart")
		return nil, func() {}, nil
	}
}
