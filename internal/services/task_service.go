package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/yukikurage/slack-task-bot/internal/apperrors"
	"github.com/yukikurage/slack-task-bot/internal/models"
	"github.com/yukikurage/slack-task-bot/internal/repository"
)

// TaskRequest is a normalized task-creation request. Both the command parser
// and the submission normalizer produce this shape.
type TaskRequest struct {
	ChannelID          string
	CreatedBy          string
	Title              string
	Description        string
	DueDate            time.Time
	ReminderInterval   *int
	AssignedUserIDs    []string
	UnresolvedMentions []string
	DedupeKey          string
}

// TaskService persists task requests and posts their confirmations.
type TaskService struct {
	taskRepo repository.TaskRepository
	notifier *Notifier
	dedupe   *DedupeGuard
}

// NewTaskService creates a TaskService.
func NewTaskService(taskRepo repository.TaskRepository, notifier *Notifier, dedupe *DedupeGuard) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		notifier: notifier,
		dedupe:   dedupe,
	}
}

// Create persists one task with its assignment rows, then posts the channel
// confirmation. Persistence comes first; a notification failure is reported
// but never rolls back the committed task. Duplicate requests inside the
// dedupe window return the originally created task without new side effects.
func (s *TaskService) Create(ctx context.Context, req TaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("タイトルを入力してください。")
	}
	if req.DueDate.IsZero() {
		return nil, apperrors.NewValidationError("期限日を指定してください。")
	}
	if len(req.AssignedUserIDs) == 0 {
		return nil, apperrors.NewValidationError("担当者を1人以上指定してください。")
	}
	if req.ChannelID == "" || req.CreatedBy == "" {
		return nil, apperrors.NewValidationError("リクエスト元を特定できませんでした。")
	}

	if req.DedupeKey != "" {
		if taskID, duplicate := s.dedupe.Acquire(req.DedupeKey); duplicate {
			log.Printf("duplicate task request suppressed (key=%s)", req.DedupeKey)
			if taskID != 0 {
				if task, err := s.taskRepo.FindByID(taskID, "Assignments"); err == nil {
					return task, nil
				}
			}
			return nil, apperrors.NewValidationError("同じタスクがすでに作成されています。")
		}
	}

	userIDs := uniqueStrings(req.AssignedUserIDs)

	task := &models.Task{
		ChannelID:        req.ChannelID,
		CreatedBy:        req.CreatedBy,
		Title:            req.Title,
		Description:      req.Description,
		Status:           models.TaskStatusOpen,
		DueDate:          req.DueDate,
		ReminderInterval: req.ReminderInterval,
	}

	if err := s.taskRepo.CreateWithAssignments(task, userIDs); err != nil {
		s.dedupe.Release(req.DedupeKey)
		return nil, apperrors.NewPersistenceError(err)
	}
	s.dedupe.Mark(req.DedupeKey, task.ID)

	if err := s.notifier.PostTaskCreated(ctx, TaskCreatedMessage{
		ChannelID:       task.ChannelID,
		AssigneeIDs:     userIDs,
		Title:           task.Title,
		DueDate:         task.DueDate,
		CreatedBy:       task.CreatedBy,
		DroppedMentions: req.UnresolvedMentions,
	}); err != nil {
		log.Printf("task %d created but notification failed: %v", task.ID, err)
		return task, apperrors.NewNotificationError(err)
	}

	return task, nil
}

// uniqueStrings drops duplicates while keeping first-seen order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
