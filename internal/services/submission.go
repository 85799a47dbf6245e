package services

import (
	"strconv"
	"strings"

	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/apperrors"
	"github.com/yukikurage/slack-task-bot/internal/slackui"
)

// NormalizeSubmission turns a submitted task modal into a TaskRequest.
//
// The modal marks its required inputs, so a well-behaved client never sends a
// blank one. The checks here are a defensive contract: malformed value trees
// become typed validation errors, never panics.
func NormalizeSubmission(cb *slack.InteractionCallback) (TaskRequest, error) {
	if cb.View.State == nil {
		return TaskRequest{}, apperrors.NewValidationError("フォームの内容を読み取れませんでした。")
	}
	values := cb.View.State.Values

	meta, err := slackui.DecodeMetadata(cb.View.PrivateMetadata)
	if err != nil || meta.ChannelID == "" {
		return TaskRequest{}, apperrors.NewValidationError("送信元チャンネルを特定できませんでした。")
	}

	assignees := values[slackui.BlockAssignees][slackui.ActionAssignees].SelectedUsers
	if len(assignees) == 0 {
		return TaskRequest{}, apperrors.NewValidationError("担当者を1人以上選択してください。")
	}

	title := strings.TrimSpace(values[slackui.BlockTitle][slackui.ActionTitle].Value)
	if title == "" {
		return TaskRequest{}, apperrors.NewValidationError("タイトルを入力してください。")
	}

	description := strings.TrimSpace(values[slackui.BlockDescription][slackui.ActionDesc].Value)
	if description == "" {
		return TaskRequest{}, apperrors.NewValidationError("詳細を入力してください。")
	}

	selectedDate := strings.TrimSpace(values[slackui.BlockDueDate][slackui.ActionDueDate].SelectedDate)
	if selectedDate == "" {
		return TaskRequest{}, apperrors.NewValidationError("締切日を選択してください。")
	}
	dueDate, err := ParseDueDate(selectedDate)
	if err != nil {
		return TaskRequest{}, apperrors.NewValidationError("締切日の形式が正しくありません。")
	}

	var reminderInterval *int
	if raw := strings.TrimSpace(values[slackui.BlockReminder][slackui.ActionReminder].Value); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			reminderInterval = &n
		}
	}

	return TaskRequest{
		ChannelID:        meta.ChannelID,
		CreatedBy:        cb.User.ID,
		Title:            title,
		Description:      description,
		DueDate:          dueDate,
		ReminderInterval: reminderInterval,
		AssignedUserIDs:  assignees,
		DedupeKey:        SubmissionDedupeKey(cb.User.ID, title, selectedDate),
	}, nil
}
