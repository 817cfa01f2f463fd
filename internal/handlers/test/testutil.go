package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/shift-reminder-bot/internal/handlers"
	"github.com/diegoclair/shift-reminder-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	RouterMock *mocks.MockActionRouter
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		RouterMock: mocks.NewMockActionRouter(ctrl),
	}

	handler = handlers.NewSlackHandler(m.RouterMock, SigningSecret, zaptest.NewLogger(t).Sugar())

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, userID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"D123456789"},
		"channel_name": {"directmessage"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedRequest(t, "/slack/commands", form.Encode(), signingSecret)
}

// CreateInteractionRequest creates a signed block_actions request for a button press
func CreateInteractionRequest(t *testing.T, userID, value, responseURL, signingSecret string) *http.Request {
	t.Helper()

	payload := map[string]any{
		"type":         slack.InteractionTypeBlockActions,
		"user":         map[string]string{"id": userID},
		"response_url": responseURL,
		"actions": []map[string]string{{
			"type":      "button",
			"action_id": "act_0_0",
			"block_id":  "row_0",
			"value":     value,
		}},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	form := url.Values{"payload": {string(raw)}}
	return signedRequest(t, "/slack/interactions", form.Encode(), signingSecret)
}

func signedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
