package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	slackbot "github.com/diegoclair/shift-reminder-bot/internal/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	router        contract.ActionRouter
	signingSecret string
	log           *zap.SugaredLogger
}

func NewSlackHandler(router contract.ActionRouter, signingSecret string, log *zap.SugaredLogger) *SlackHandler {
	return &SlackHandler{
		router:        router,
		signingSecret: signingSecret,
		log:           log,
	}
}

// HandleSlashCommand answers "/jadwal <command>" with an ephemeral reply
func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if status, err := h.verify(r); err != nil {
		h.log.Infow("Rejected slack request", "error", err)
		w.WriteHeader(status)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reply := h.router.HandleText(r.Context(), s.UserID, s.Text)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(slackbot.Msg(reply)); err != nil {
		h.log.Warnw("Failed to write slack response", "error", err)
	}
}

// HandleInteraction answers a button press by replacing the message it was
// pressed on through the interaction's response url
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if status, err := h.verify(r); err != nil {
		h.log.Infow("Rejected slack request", "error", err)
		w.WriteHeader(status)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.PostFormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions || len(callback.ActionCallback.BlockActions) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	action := callback.ActionCallback.BlockActions[0]
	reply := h.router.HandleCallback(r.Context(), callback.User.ID, action.Value)

	if err := h.respond(r, callback.ResponseURL, reply); err != nil {
		h.log.Warnw("Failed to update slack message", "user_id", callback.User.ID, "error", err)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) respond(r *http.Request, responseURL string, reply entity.Reply) error {
	if responseURL == "" {
		return fmt.Errorf("interaction has no response url")
	}
	return slack.PostWebhookContext(r.Context(), responseURL, slackbot.WebhookMessage(reply))
}

// verify checks the request signature and leaves the body readable
func (h *SlackHandler) verify(r *http.Request) (int, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return http.StatusBadRequest, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return http.StatusUnauthorized, err
	}

	if _, err := verifier.Write(body); err != nil {
		return http.StatusInternalServerError, err
	}

	if err := verifier.Ensure(); err != nil {
		return http.StatusUnauthorized, err
	}

	return http.StatusOK, nil
}
