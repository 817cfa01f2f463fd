package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// UpdateHandler answers a single Telegram update
type UpdateHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update)
}

type TelegramHandler struct {
	updates UpdateHandler
	token   string
	log     *zap.SugaredLogger
}

func NewTelegramHandler(updates UpdateHandler, token string, log *zap.SugaredLogger) *TelegramHandler {
	return &TelegramHandler{
		updates: updates,
		token:   token,
		log:     log,
	}
}

// HandleWebhook serves POST /telegram/{token}. The bot token in the path is the
// shared secret Telegram was registered with.
func (h *TelegramHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.log.Infow("Rejected telegram update", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.updates.Handle(r.Context(), update)
	w.WriteHeader(http.StatusOK)
}
