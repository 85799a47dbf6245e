package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/slackapi"
	"github.com/yukikurage/slack-task-bot/internal/utils"
)

// TaskCreatedMessage is everything the confirmation message needs.
type TaskCreatedMessage struct {
	ChannelID       string
	AssigneeIDs     []string
	Title           string
	DueDate         time.Time
	CreatedBy       string
	DroppedMentions []string
}

// Notifier posts task confirmations to the originating channel.
type Notifier struct {
	client slackapi.Client
}

// NewNotifier creates a Notifier.
func NewNotifier(client slackapi.Client) *Notifier {
	return &Notifier{client: client}
}

// PostTaskCreated posts exactly one confirmation message: marker, assignee
// mentions in assignment order, bold title, formatted due date and creator
// mention, plus a warning line when mentions were dropped.
func (n *Notifier) PostTaskCreated(ctx context.Context, msg TaskCreatedMessage) error {
	var b strings.Builder
	b.WriteString("✅ ")
	for _, id := range msg.AssigneeIDs {
		fmt.Fprintf(&b, "<@%s> ", id)
	}
	fmt.Fprintf(&b, "タスクが作成されました: *%s* (締切: %s) (作成者: <@%s>)",
		msg.Title, utils.FormatDueDate(msg.DueDate), msg.CreatedBy)

	if len(msg.DroppedMentions) > 0 {
		names := make([]string, len(msg.DroppedMentions))
		for i, name := range msg.DroppedMentions {
			names[i] = "@" + name
		}
		fmt.Fprintf(&b, "\n⚠️ 見つからなかった担当者: %s", strings.Join(names, ", "))
	}

	if _, _, err := n.client.PostMessageContext(ctx, msg.ChannelID, slack.MsgOptionText(b.String(), false)); err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}

	return nil
}
