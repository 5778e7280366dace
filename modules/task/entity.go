package task

import (
	"time"

	domain "github.com/example/task-tracker/domain/task"
)

// TaskModel is the persisted form of a task.
type TaskModel struct {
	ID          uint      `gorm:"primarykey"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"size:10;not null"`
	Status      string    `gorm:"size:20;not null;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

func toModel(t *domain.Task) *TaskModel {
	return &TaskModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

func (m *TaskModel) toDomain() *domain.Task {
	return &domain.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    domain.Priority(m.Priority),
		Status:      domain.Status(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}
