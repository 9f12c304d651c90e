package notify

import (
	"log/slog"

	"github.com/slack-go/slack"
)

// SlackClient defines the Slack operations the notifier needs.
// This allows mocking in tests while keeping the real implementation simple.
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// Slack posts announcements to a Slack channel.
type Slack struct {
	client    SlackClient
	channelID string
	log       *slog.Logger
}

// NewSlack creates a Slack notifier posting to the given channel.
func NewSlack(log *slog.Logger, client SlackClient, channelID string) *Slack {
	return &Slack{
		client:    client,
		channelID: channelID,
		log:       log,
	}
}

// Send posts the announcement text and reports whether it was
// delivered. Failures are logged at debug level, mirroring the
// desktop notifier contract.
func (s *Slack) Send(announce string) bool {
	_, _, err := s.client.PostMessage(s.channelID, slack.MsgOptionText(announce, false))
	if err != nil {
		s.log.Debug("failed to post announcement to Slack", "channel", s.channelID, "error", err)
		return false
	}
	return true
}
