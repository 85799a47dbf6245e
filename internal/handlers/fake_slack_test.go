package handlers

import (
	"context"

	"github.com/slack-go/slack"
)

// fakeSlackClient is a hand-rolled slackapi.Client for handler tests.
type fakeSlackClient struct {
	users []slack.User

	dmChannelID string

	openedViews  []slack.ModalViewRequest
	viewTriggers []string
	openViewErr  error

	postedChannels []string
	postedTexts    []string
	postErr        error
}

func (f *fakeSlackClient) GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
	return f.users, nil
}

func (f *fakeSlackClient) OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error) {
	channel := &slack.Channel{}
	channel.ID = f.dmChannelID
	return channel, false, true, nil
}

func (f *fakeSlackClient) OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	if f.openViewErr != nil {
		return nil, f.openViewErr
	}
	f.viewTriggers = append(f.viewTriggers, triggerID)
	f.openedViews = append(f.openedViews, view)
	return &slack.ViewResponse{}, nil
}

func (f *fakeSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	if f.postErr != nil {
		return "", "", f.postErr
	}
	_, values, err := slack.UnsafeApplyMsgOptions("test-token", channelID, "https://slack.com/api/", options...)
	if err != nil {
		return "", "", err
	}
	f.postedChannels = append(f.postedChannels, channelID)
	f.postedTexts = append(f.postedTexts, values.Get("text"))
	return channelID, "1234567890.123456", nil
}
