package task

import (
	"context"

	domain "github.com/example/task-tracker/domain/task"
)

// Error codes carried in service replies.
const (
	CodeNotFound = "not_found"
	CodeInvalid  = "invalid"
)

// ServiceError is a domain error serialized into a service reply.
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	Ordering string `json:"ordering,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Error *ServiceError `json:"error,omitempty"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Payload domain.Payload `json:"payload"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// UpdateTaskRequest is the request for a full or partial update.
type UpdateTaskRequest struct {
	TaskID  uint           `json:"task_id"`
	Partial bool           `json:"partial"`
	Payload domain.Payload `json:"payload"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool          `json:"deleted"`
	Error   *ServiceError `json:"error,omitempty"`
}

// SummarizeTasksRequest is the request for the status summary.
type SummarizeTasksRequest struct{}

// SummarizeTasksResponse maps each status to its task count.
type SummarizeTasksResponse struct {
	Counts map[string]int64 `json:"counts"`
	Error  *ServiceError    `json:"error,omitempty"`
}

// TaskResponse is the response for a single task.
type TaskResponse struct {
	Task  *domain.Task  `json:"task,omitempty"`
	Error *ServiceError `json:"error,omitempty"`
}

// TaskPort is the contract driving adapters use to reach the task module.
type TaskPort interface {
	ListTasks(ctx context.Context, req *ListTasksRequest) ([]domain.Task, error)
	CreateTask(ctx context.Context, payload domain.Payload) (*domain.Task, error)
	GetTask(ctx context.Context, taskID uint) (*domain.Task, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint) error
	SummarizeTasks(ctx context.Context) (map[string]int64, error)
}
