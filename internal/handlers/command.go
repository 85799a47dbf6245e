package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/apperrors"
	"github.com/yukikurage/slack-task-bot/internal/services"
	"github.com/yukikurage/slack-task-bot/internal/slackapi"
	"github.com/yukikurage/slack-task-bot/internal/slackui"
)

// CommandHandler serves the /task slash command.
type CommandHandler struct {
	parser *services.CommandParser
	tasks  *services.TaskService
	client slackapi.Client
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(parser *services.CommandParser, tasks *services.TaskService, client slackapi.Client) *CommandHandler {
	return &CommandHandler{
		parser: parser,
		tasks:  tasks,
		client: client,
	}
}

// HandleCommand responds to the slash command: empty text opens the
// task-creation modal, otherwise the text is parsed and the task is created
// and announced. Slash-command responses are plain text, so errors come back
// as text bodies rather than JSON.
func (h *CommandHandler) HandleCommand(c *gin.Context) {
	cmd, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		c.String(http.StatusBadRequest, "リクエストを読み取れませんでした。")
		return
	}

	intent, err := h.parser.Parse(c.Request.Context(), cmd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	switch it := intent.(type) {
	case services.ShowFormIntent:
		modal, err := slackui.NewTaskModal(it.ChannelID)
		if err != nil {
			log.Printf("failed to build task modal: %v", err)
			c.String(http.StatusInternalServerError, "フォームの表示に失敗しました。")
			return
		}
		if _, err := h.client.OpenViewContext(c.Request.Context(), it.TriggerID, modal); err != nil {
			log.Printf("views.open failed: %v", err)
			c.String(http.StatusInternalServerError, "フォームの表示に失敗しました。")
			return
		}
		c.String(http.StatusOK, "")

	case services.CreateTaskIntent:
		if _, err := h.tasks.Create(c.Request.Context(), it.Request); err != nil {
			h.respondError(c, err)
			return
		}
		c.String(http.StatusOK, "")

	default:
		log.Printf("unhandled command intent %T", intent)
		c.String(http.StatusInternalServerError, "タスクの作成に失敗しました。")
	}
}

func (h *CommandHandler) respondError(c *gin.Context, err error) {
	if apperrors.IsValidation(err) {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("slash command failed: %v", err)
	c.String(http.StatusInternalServerError, "タスクの作成に失敗しました。")
}
