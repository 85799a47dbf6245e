package slackui

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// Modal callback and block identifiers. The interaction handler reads the
// submitted values back out by these keys, so they must stay in sync.
const (
	TaskModalCallbackID = "task_modal"

	BlockAssignees   = "who"
	ActionAssignees  = "who_select"
	BlockTitle       = "title"
	ActionTitle      = "title_input"
	BlockDescription = "description"
	ActionDesc       = "desc_input"
	BlockDueDate     = "when"
	ActionDueDate    = "when_picker"
	BlockReminder    = "remind"
	ActionReminder   = "remind_input"
)

// Metadata rides in the modal's private_metadata field so the submission
// callback knows which channel the command came from.
type Metadata struct {
	ChannelID string `json:"channel_id"`
}

// EncodeMetadata serializes modal metadata to a private_metadata string.
func EncodeMetadata(m Metadata) (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode modal metadata: %w", err)
	}
	return string(raw), nil
}

// DecodeMetadata parses a private_metadata string back into Metadata.
func DecodeMetadata(raw string) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Metadata{}, fmt.Errorf("failed to decode modal metadata: %w", err)
	}
	return m, nil
}

// NewTaskModal builds the task-creation modal. channelID must already be
// DM-resolved; it is embedded in private_metadata for the submission callback.
func NewTaskModal(channelID string) (slack.ModalViewRequest, error) {
	metadata, err := EncodeMetadata(Metadata{ChannelID: channelID})
	if err != nil {
		return slack.ModalViewRequest{}, err
	}

	assignees := slack.NewInputBlock(
		BlockAssignees,
		slack.NewTextBlockObject(slack.PlainTextType, "担当者 (複数可)", false, false),
		nil,
		slack.NewOptionsMultiSelectBlockElement(slack.MultiOptTypeUser, nil, ActionAssignees),
	)

	title := slack.NewInputBlock(
		BlockTitle,
		slack.NewTextBlockObject(slack.PlainTextType, "タイトル", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(nil, ActionTitle),
	)

	descElement := slack.NewPlainTextInputBlockElement(nil, ActionDesc)
	descElement.Multiline = true
	description := slack.NewInputBlock(
		BlockDescription,
		slack.NewTextBlockObject(slack.PlainTextType, "詳細", false, false),
		nil,
		descElement,
	)

	dueDate := slack.NewInputBlock(
		BlockDueDate,
		slack.NewTextBlockObject(slack.PlainTextType, "締切日を選択", false, false),
		nil,
		slack.NewDatePickerBlockElement(ActionDueDate),
	)

	reminder := slack.NewInputBlock(
		BlockReminder,
		slack.NewTextBlockObject(slack.PlainTextType, "リマインダー (開始から進捗確認する日数の間隔)", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(nil, ActionReminder),
	)
	reminder.Optional = true

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      TaskModalCallbackID,
		PrivateMetadata: metadata,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "新しいタスク", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "作成", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "キャンセル", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				assignees,
				title,
				description,
				dueDate,
				reminder,
			},
		},
	}, nil
}
