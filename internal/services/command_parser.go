package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/apperrors"
	"github.com/yukikurage/slack-task-bot/internal/slackapi"
)

// mentionPattern matches @name tokens in the command's first segment.
var mentionPattern = regexp.MustCompile(`@(\w+)`)

var dueDateLayouts = []string{"2006-01-02", "2006/01/02"}

// Intent is what a slash command asks for: either showing the creation form
// or creating a task directly from the command text.
type Intent interface {
	intent()
}

// ShowFormIntent asks the caller to open the task-creation modal.
type ShowFormIntent struct {
	TriggerID string
	ChannelID string
}

func (ShowFormIntent) intent() {}

// CreateTaskIntent carries a fully normalized task-creation request.
type CreateTaskIntent struct {
	Request TaskRequest
}

func (CreateTaskIntent) intent() {}

// CommandParser turns raw slash-command input into an Intent.
//
// Non-empty text is split on commas into at most five segments:
//
//	@担当者 [@担当者...], タイトル, 期限日[, 詳細[, リマインダー日数]]
//
// The first three are mandatory.
type CommandParser struct {
	client   slackapi.Client
	resolver *MentionResolver
}

// NewCommandParser creates a CommandParser.
func NewCommandParser(client slackapi.Client, resolver *MentionResolver) *CommandParser {
	return &CommandParser{
		client:   client,
		resolver: resolver,
	}
}

// Parse produces the intent for a slash command. Validation problems come
// back as *apperrors.ValidationError with a user-facing message.
func (p *CommandParser) Parse(ctx context.Context, cmd slack.SlashCommand) (Intent, error) {
	channelID, err := p.resolveChannel(ctx, cmd.ChannelID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return ShowFormIntent{
			TriggerID: cmd.TriggerID,
			ChannelID: channelID,
		}, nil
	}

	segments := strings.SplitN(text, ",", 5)
	if len(segments) < 3 {
		return nil, apperrors.NewValidationError("入力が不足しています。「@担当者, タイトル, 期限日」の形式で入力してください。")
	}

	names := mentionNames(segments[0])
	resolution := p.resolver.Resolve(ctx, names)
	if len(resolution.UserIDs) == 0 {
		return nil, apperrors.NewValidationError("担当者が見つかりませんでした。@ユーザー名を確認してください。")
	}

	title := strings.TrimSpace(segments[1])
	if title == "" {
		return nil, apperrors.NewValidationError("タイトルを入力してください。")
	}

	dueDate, err := ParseDueDate(strings.TrimSpace(segments[2]))
	if err != nil {
		return nil, apperrors.NewValidationError("期限日の形式が正しくありません。(例: 2025-06-01)")
	}

	description := ""
	if len(segments) > 3 {
		description = strings.TrimSpace(segments[3])
	}

	var reminderInterval *int
	if len(segments) > 4 {
		if n, err := strconv.Atoi(strings.TrimSpace(segments[4])); err == nil {
			reminderInterval = &n
		}
	}

	return CreateTaskIntent{
		Request: TaskRequest{
			ChannelID:          channelID,
			CreatedBy:          cmd.UserID,
			Title:              title,
			Description:        description,
			DueDate:            dueDate,
			ReminderInterval:   reminderInterval,
			AssignedUserIDs:    resolution.UserIDs,
			UnresolvedMentions: resolution.Unresolved,
			DedupeKey:          cmd.TriggerID,
		},
	}, nil
}

// resolveChannel swaps a direct-message channel ID for the real conversation
// ID. conversations.open is idempotent: re-opening an open DM returns the
// same ID.
func (p *CommandParser) resolveChannel(ctx context.Context, channelID, userID string) (string, error) {
	if !strings.HasPrefix(channelID, "D") {
		return channelID, nil
	}

	channel, _, _, err := p.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return "", fmt.Errorf("conversations.open failed for user %s: %w", userID, err)
	}

	return channel.ID, nil
}

func mentionNames(segment string) []string {
	matches := mentionPattern.FindAllStringSubmatch(segment, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// ParseDueDate parses a calendar date in either 2006-01-02 or 2006/01/02 form.
func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
