package task

import (
	"context"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// OrderingAscending is the only ordering value that sorts oldest first.
const OrderingAscending = "created_at"

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.repo.List(ctx, ListFilter{
		Status:    req.Status,
		Priority:  req.Priority,
		Ascending: req.Ordering == OrderingAscending,
	})
	if err != nil {
		return ListTasksResponse{}, err
	}

	resp := ListTasksResponse{Tasks: make([]domain.Task, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, *t)
	}
	return resp, nil
}

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := domain.New(req.Payload, time.Now())
	if err != nil {
		se, err := toServiceError(err)
		return TaskResponse{Error: se}, err
	}

	if err := m.repo.Create(ctx, t); err != nil {
		return TaskResponse{}, err
	}
	m.logger.Info("Task created", "id", t.ID, "task", t.String())

	m.publish(func() error {
		return events.TaskCreatedV1.Publish(m.eventBus, events.TaskCreatedEvent{
			EventID:   uuid.NewString(),
			TaskID:    t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt,
		}, nil)
	}, "TaskCreated", t.ID)

	return TaskResponse{Task: t}, nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.repo.FindByID(ctx, req.TaskID)
	if err != nil {
		se, err := toServiceError(err)
		return TaskResponse{Error: se}, err
	}
	return TaskResponse{Task: t}, nil
}

// updateTask handles the update-task service request for both PUT and PATCH.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.repo.FindByID(ctx, req.TaskID)
	if err != nil {
		se, err := toServiceError(err)
		return TaskResponse{Error: se}, err
	}

	mode := domain.FullUpdate
	if req.Partial {
		mode = domain.PartialUpdate
	}
	if err := t.Apply(req.Payload, mode); err != nil {
		se, err := toServiceError(err)
		return TaskResponse{Error: se}, err
	}

	if err := m.repo.Save(ctx, t); err != nil {
		se, err := toServiceError(err)
		return TaskResponse{Error: se}, err
	}
	m.logger.Info("Task updated", "id", t.ID, "task", t.String(), "partial", req.Partial)

	m.publish(func() error {
		return events.TaskUpdatedV1.Publish(m.eventBus, events.TaskUpdatedEvent{
			EventID:   uuid.NewString(),
			TaskID:    t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			Status:    string(t.Status),
			Partial:   req.Partial,
			UpdatedAt: time.Now().UTC(),
		}, nil)
	}, "TaskUpdated", t.ID)

	return TaskResponse{Task: t}, nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	t, err := m.repo.FindByID(ctx, req.TaskID)
	if err != nil {
		se, err := toServiceError(err)
		return DeleteTaskResponse{Error: se}, err
	}

	if err := m.repo.Delete(ctx, req.TaskID); err != nil {
		se, err := toServiceError(err)
		return DeleteTaskResponse{Error: se}, err
	}
	m.logger.Info("Task deleted", "id", req.TaskID)

	m.publish(func() error {
		return events.TaskDeletedV1.Publish(m.eventBus, events.TaskDeletedEvent{
			EventID:   uuid.NewString(),
			TaskID:    req.TaskID,
			Title:     t.Title,
			DeletedAt: time.Now().UTC(),
		}, nil)
	}, "TaskDeleted", req.TaskID)

	return DeleteTaskResponse{Deleted: true}, nil
}

// summarizeTasks handles the summarize-tasks service request.
func (m *TaskModule) summarizeTasks(ctx context.Context, _ SummarizeTasksRequest, _ *mono.Msg) (SummarizeTasksResponse, error) {
	counts, err := m.repo.CountByStatus(ctx)
	if err != nil {
		return SummarizeTasksResponse{}, err
	}
	for _, s := range domain.Statuses() {
		if _, ok := counts[string(s)]; !ok {
			counts[string(s)] = 0
		}
	}
	return SummarizeTasksResponse{Counts: counts}, nil
}

// publish emits an event when a bus is available.
// Publishing is best-effort: failures are logged and never fail the request.
func (m *TaskModule) publish(fn func() error, event string, taskID uint) {
	if m.eventBus == nil {
		return
	}
	if err := fn(); err != nil {
		m.logger.Warn("Failed to publish event", "event", event, "task_id", taskID, "error", err)
	}
}
