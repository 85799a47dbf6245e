package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/slack-task-bot/internal/dto"
	"github.com/yukikurage/slack-task-bot/internal/models"
	"github.com/yukikurage/slack-task-bot/internal/repository"
	"github.com/yukikurage/slack-task-bot/internal/utils"
)

// TaskHandler serves the read-only task listing API.
type TaskHandler struct {
	taskRepo repository.TaskRepository
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// ListTasks returns tasks, newest first.
// Optional filters: channel_id, created_by, assigned_to, status.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.TaskFilter{
		ChannelID:      c.Query("channel_id"),
		CreatedBy:      c.Query("created_by"),
		AssignedUserID: c.Query("assigned_to"),
		Page:           params.Page,
		PageSize:       params.Limit,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		if status != models.TaskStatusOpen && status != models.TaskStatusDone {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter.Status = &status
	}

	tasks, total, err := h.taskRepo.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
