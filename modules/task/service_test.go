package task

import (
	"context"
	"errors"
	"testing"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)         {}
func (m *mockLogger) Info(msg string, args ...any)          {}
func (m *mockLogger) Warn(msg string, args ...any)          {}
func (m *mockLogger) Error(msg string, args ...any)         {}
func (m *mockLogger) With(args ...any) types.Logger         { return m }
func (m *mockLogger) WithError(err error) types.Logger      { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

// createTestModule creates a task module backed by an in-memory database.
func createTestModule(t *testing.T) *TaskModule {
	t.Helper()
	m := NewModule(Config{DSN: ":memory:"}, &mockLogger{})
	m.db = setupTestDB(t)
	m.repo = NewRepository(m.db)
	return m
}

func str(s string) *string { return &s }

func mustCreate(t *testing.T, m *TaskModule, p domain.Payload) *domain.Task {
	t.Helper()
	resp, err := m.createTask(context.Background(), CreateTaskRequest{Payload: p}, nil)
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Task)
	return resp.Task
}

func TestCreateTask(t *testing.T) {
	m := createTestModule(t)
	ctx := context.Background()

	t.Run("applies defaults and trims title", func(t *testing.T) {
		task := mustCreate(t, m, domain.Payload{Title: str("  Plan sprint ")})

		assert.NotZero(t, task.ID)
		assert.Equal(t, "Plan sprint", task.Title)
		assert.Equal(t, "", task.Description)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, domain.StatusPending, task.Status)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("ids unique and created_at non-decreasing", func(t *testing.T) {
		a := mustCreate(t, m, domain.Payload{Title: str("a")})
		b := mustCreate(t, m, domain.Payload{Title: str("b")})

		assert.NotEqual(t, a.ID, b.ID)
		assert.False(t, b.CreatedAt.Before(a.CreatedAt))
	})

	t.Run("validation errors are returned in the reply", func(t *testing.T) {
		tests := []struct {
			name    string
			payload domain.Payload
			message string
		}{
			{"missing title", domain.Payload{}, domain.MsgTitleRequired},
			{"blank title", domain.Payload{Title: str("  "), Priority: str("HIGH")}, domain.MsgTitleRequired},
			{"bad priority", domain.Payload{Title: str("x"), Priority: str("URGENT")}, "Invalid priority. Allowed: ['LOW', 'MEDIUM', 'HIGH']"},
			{"bad status", domain.Payload{Title: str("x"), Status: str("DONE")}, "Invalid status. Allowed: ['PENDING', 'IN_PROGRESS', 'COMPLETED']"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp, err := m.createTask(ctx, CreateTaskRequest{Payload: tt.payload}, nil)
				require.NoError(t, err)
				require.NotNil(t, resp.Error)
				assert.Equal(t, CodeInvalid, resp.Error.Code)
				assert.Equal(t, tt.message, resp.Error.Message)
				assert.Nil(t, resp.Task)
			})
		}
	})
}

func TestGetTask(t *testing.T) {
	m := createTestModule(t)
	ctx := context.Background()
	created := mustCreate(t, m, domain.Payload{Title: str("Echo"), Description: str("d"), Priority: str("LOW")})

	resp, err := m.getTask(ctx, GetTaskRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Task)
	assert.Equal(t, created.ID, resp.Task.ID)
	assert.Equal(t, created.Title, resp.Task.Title)
	assert.Equal(t, created.Description, resp.Task.Description)
	assert.Equal(t, created.Priority, resp.Task.Priority)
	assert.Equal(t, created.Status, resp.Task.Status)
	assert.True(t, created.CreatedAt.Equal(resp.Task.CreatedAt))

	resp, err = m.getTask(ctx, GetTaskRequest{TaskID: created.ID + 1}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
	assert.Equal(t, "Task not found.", resp.Error.Message)
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update changes only status", func(t *testing.T) {
		m := createTestModule(t)
		created := mustCreate(t, m, domain.Payload{Title: str("Keep"), Description: str("same"), Priority: str("HIGH")})

		resp, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:  created.ID,
			Partial: true,
			Payload: domain.Payload{Status: str("COMPLETED")},
		}, nil)
		require.NoError(t, err)
		require.Nil(t, resp.Error)

		got, err := m.repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, got.Status)
		assert.Equal(t, "Keep", got.Title)
		assert.Equal(t, "same", got.Description)
		assert.Equal(t, domain.PriorityHigh, got.Priority)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("full update requires title", func(t *testing.T) {
		m := createTestModule(t)
		created := mustCreate(t, m, domain.Payload{Title: str("Keep")})

		resp, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:  created.ID,
			Payload: domain.Payload{Status: str("COMPLETED")},
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, domain.MsgTitleRequiredOnPut, resp.Error.Message)

		got, err := m.repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, got.Status)
	})

	t.Run("full update falls back to stored values", func(t *testing.T) {
		m := createTestModule(t)
		created := mustCreate(t, m, domain.Payload{Title: str("Old"), Description: str("desc"), Status: str("IN_PROGRESS")})

		resp, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:  created.ID,
			Payload: domain.Payload{Title: str(" New ")},
		}, nil)
		require.NoError(t, err)
		require.Nil(t, resp.Error)
		assert.Equal(t, "New", resp.Task.Title)
		assert.Equal(t, "desc", resp.Task.Description)
		assert.Equal(t, domain.StatusInProgress, resp.Task.Status)
	})

	t.Run("missing task", func(t *testing.T) {
		m := createTestModule(t)

		resp, err := m.updateTask(ctx, UpdateTaskRequest{
			TaskID:  42,
			Partial: true,
			Payload: domain.Payload{Status: str("COMPLETED")},
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, CodeNotFound, resp.Error.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	m := createTestModule(t)
	ctx := context.Background()
	created := mustCreate(t, m, domain.Payload{Title: str("Gone soon")})

	resp, err := m.deleteTask(ctx, DeleteTaskRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)
	assert.True(t, resp.Deleted)
	assert.Nil(t, resp.Error)

	_, err = m.repo.FindByID(ctx, created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	resp, err = m.deleteTask(ctx, DeleteTaskRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)
	assert.False(t, resp.Deleted)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
}

func TestListTasks(t *testing.T) {
	m := createTestModule(t)
	ctx := context.Background()

	first := mustCreate(t, m, domain.Payload{Title: str("first"), Status: str("COMPLETED")})
	second := mustCreate(t, m, domain.Payload{Title: str("second"), Priority: str("HIGH")})

	tests := []struct {
		name string
		req  ListTasksRequest
		want []uint
	}{
		{"default descending", ListTasksRequest{}, []uint{second.ID, first.ID}},
		{"explicit descending", ListTasksRequest{Ordering: "-created_at"}, []uint{second.ID, first.ID}},
		{"ascending", ListTasksRequest{Ordering: "created_at"}, []uint{first.ID, second.ID}},
		{"unknown ordering falls back", ListTasksRequest{Ordering: "title"}, []uint{second.ID, first.ID}},
		{"status filter", ListTasksRequest{Status: "COMPLETED"}, []uint{first.ID}},
		{"priority filter", ListTasksRequest{Priority: "HIGH"}, []uint{second.ID}},
		{"unrecognized filter value", ListTasksRequest{Priority: "URGENT"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := m.listTasks(ctx, tt.req, nil)
			require.NoError(t, err)
			require.NotNil(t, resp.Tasks)

			got := make([]uint, 0, len(resp.Tasks))
			for _, task := range resp.Tasks {
				got = append(got, task.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeTasks(t *testing.T) {
	m := createTestModule(t)
	ctx := context.Background()

	resp, err := m.summarizeTasks(ctx, SummarizeTasksRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"PENDING": 0, "IN_PROGRESS": 0, "COMPLETED": 0}, resp.Counts)

	mustCreate(t, m, domain.Payload{Title: str("a")})
	mustCreate(t, m, domain.Payload{Title: str("b")})
	mustCreate(t, m, domain.Payload{Title: str("c"), Status: str("COMPLETED")})

	resp, err = m.summarizeTasks(ctx, SummarizeTasksRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"PENDING": 2, "IN_PROGRESS": 0, "COMPLETED": 1}, resp.Counts)
}

func TestServiceErrorRoundTrip(t *testing.T) {
	se, err := toServiceError(domain.ErrNotFound)
	require.NoError(t, err)
	assert.True(t, errors.Is(fromServiceError(se), domain.ErrNotFound))

	se, err = toServiceError(&domain.ValidationError{Message: domain.MsgTitleBlank})
	require.NoError(t, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(fromServiceError(se), &ve))
	assert.Equal(t, domain.MsgTitleBlank, ve.Message)

	boom := errors.New("disk full")
	se, err = toServiceError(boom)
	assert.Nil(t, se)
	assert.Equal(t, boom, err)

	assert.NoError(t, fromServiceError(nil))
	assert.Error(t, fromServiceError(&ServiceError{Code: "weird", Message: "?"}))
}
