package repository

import (
	"github.com/yukikurage/slack-task-bot/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateWithAssignments creates a task and one assignment row per user ID
	// in a single transaction. Either everything is written or nothing is.
	CreateWithAssignments(task *models.Task, userIDs []string) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ChannelID      string
	Status         *models.TaskStatus
	CreatedBy      string
	AssignedUserID string
	Page           int
	PageSize       int
}
