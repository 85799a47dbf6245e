package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "open"
	TaskStatusDone TaskStatus = "done"
)

type Task struct {
	ID               uint64         `gorm:"primarykey" json:"id"`
	ChannelID        string         `gorm:"type:varchar(32);not null;index" json:"channel_id"`
	CreatedBy        string         `gorm:"type:varchar(32);not null;index" json:"created_by"`
	Title            string         `gorm:"not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Status           TaskStatus     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	DueDate          time.Time      `gorm:"not null" json:"due_date"`
	ReminderInterval *int           `json:"reminder_interval"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}
