package task

import (
	"fmt"
	"time"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status represents the state of a task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

var (
	priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}
	statuses   = []Status{StatusPending, StatusInProgress, StatusCompleted}
)

// Priorities returns the allowed priorities in declaration order.
func Priorities() []Priority {
	return append([]Priority(nil), priorities...)
}

// Statuses returns the allowed statuses in declaration order.
func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

// IsValidPriority reports whether v is one of the allowed priorities.
func IsValidPriority(v string) bool {
	for _, p := range priorities {
		if string(p) == v {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether v is one of the allowed statuses.
func IsValidStatus(v string) bool {
	for _, s := range statuses {
		if string(s) == v {
			return true
		}
	}
	return false
}

// TimeLayout is the ISO-8601 layout used when a task timestamp leaves the service.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

// Task is the core domain entity.
type Task struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (%s)", t.Title, t.Status)
}
