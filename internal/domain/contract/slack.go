package contract

//go:generate mockgen -source=slack.go -destination=../../../mocks/mock_slack.go -package=mocks

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel or user
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
