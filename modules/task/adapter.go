package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter implements TaskPort on top of the task module's ServiceContainer.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// ListTasks lists tasks via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context, req *ListTasksRequest) ([]domain.Task, error) {
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-tasks",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	if err := fromServiceError(resp.Error); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CreateTask creates a task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, payload domain.Payload) (*domain.Task, error) {
	req := CreateTaskRequest{Payload: payload}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return taskFromResponse(&resp)
}

// GetTask retrieves a task by ID via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID uint) (*domain.Task, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-task service call failed: %w", err)
	}
	return taskFromResponse(&resp)
}

// UpdateTask applies a full or partial update via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-task",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	return taskFromResponse(&resp)
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID uint) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	if err := fromServiceError(resp.Error); err != nil {
		return err
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %d", taskID)
	}
	return nil
}

// SummarizeTasks returns task counts per status via the summarize-tasks service.
func (a *taskAdapter) SummarizeTasks(ctx context.Context) (map[string]int64, error) {
	var resp SummarizeTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"summarize-tasks",
		json.Marshal,
		json.Unmarshal,
		&SummarizeTasksRequest{},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("summarize-tasks service call failed: %w", err)
	}
	if err := fromServiceError(resp.Error); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

func taskFromResponse(resp *TaskResponse) (*domain.Task, error) {
	if err := fromServiceError(resp.Error); err != nil {
		return nil, err
	}
	if resp.Task == nil {
		return nil, fmt.Errorf("task service returned an empty reply")
	}
	return resp.Task, nil
}
