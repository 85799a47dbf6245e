package dto

import (
	"time"

	"github.com/yukikurage/slack-task-bot/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID               uint64            `json:"id"`
	ChannelID        string            `json:"channel_id"`
	CreatedBy        string            `json:"created_by"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Status           models.TaskStatus `json:"status"`
	DueDate          time.Time         `json:"due_date"`
	ReminderInterval *int              `json:"reminder_interval"`
	AssignedUserIDs  []string          `json:"assigned_user_ids"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:               task.ID,
		ChannelID:        task.ChannelID,
		CreatedBy:        task.CreatedBy,
		Title:            task.Title,
		Description:      task.Description,
		Status:           task.Status,
		DueDate:          task.DueDate,
		ReminderInterval: task.ReminderInterval,
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}

	// Include assignees if preloaded
	if len(task.Assignments) > 0 {
		dto.AssignedUserIDs = make([]string, len(task.Assignments))
		for i, assignment := range task.Assignments {
			dto.AssignedUserIDs[i] = assignment.UserID
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of Task models to TaskDTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
