package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// Routes wires the inbound endpoints. A nil handler leaves its transport's
// routes out.
func Routes(log *zap.SugaredLogger, slackHandler *SlackHandler, telegramHandler *TelegramHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		logger.Middleware(log, "http"),
		middleware.Timeout(requestTimeout),
	)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	if slackHandler != nil {
		r.Post("/slack/commands", slackHandler.HandleSlashCommand)
		r.Post("/slack/interactions", slackHandler.HandleInteraction)
	}

	if telegramHandler != nil {
		r.Post("/telegram/{token}", telegramHandler.HandleWebhook)
	}

	return r
}
