package slackapi

import (
	"context"

	"github.com/slack-go/slack"
)

// Client is the subset of the Slack Web API this service calls. Handlers and
// services take it as an injected dependency so tests can use fakes.
type Client interface {
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// New creates a Slack Web API client from a bot token.
func New(botToken string) Client {
	return slack.New(botToken)
}
