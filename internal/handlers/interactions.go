package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/apperrors"
	"github.com/yukikurage/slack-task-bot/internal/services"
)

// InteractionHandler serves Slack interaction callbacks. Only view_submission
// payloads from the task modal are handled.
type InteractionHandler struct {
	tasks *services.TaskService
}

// NewInteractionHandler creates an InteractionHandler.
func NewInteractionHandler(tasks *services.TaskService) *InteractionHandler {
	return &InteractionHandler{tasks: tasks}
}

// HandleInteraction normalizes a submitted task modal, creates the task and
// clears the modal. Slack closes the form on {"response_action": "clear"}.
func (h *InteractionHandler) HandleInteraction(c *gin.Context) {
	raw := c.PostForm("payload")
	if raw == "" {
		apperrors.BadRequest(c, "Missing payload")
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(raw), &callback); err != nil {
		apperrors.BadRequest(c, "Malformed payload")
		return
	}

	if callback.Type != slack.InteractionTypeViewSubmission {
		apperrors.UnsupportedPayload(c)
		return
	}

	req, err := services.NormalizeSubmission(&callback)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.tasks.Create(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response_action": "clear"})
}

func (h *InteractionHandler) respondError(c *gin.Context, err error) {
	if apperrors.IsValidation(err) {
		apperrors.BadRequest(c, err.Error())
		return
	}
	log.Printf("view submission failed: %v", err)
	apperrors.InternalError(c, "タスクの作成に失敗しました。")
}
