package task

import (
	"errors"
	"testing"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskAdapter_NilContainer(t *testing.T) {
	assert.Panics(t, func() { NewTaskAdapter(nil) })
}

func TestTaskFromResponse(t *testing.T) {
	t.Run("task", func(t *testing.T) {
		want := &domain.Task{ID: 3, Title: "x"}
		got, err := taskFromResponse(&TaskResponse{Task: want})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := taskFromResponse(&TaskResponse{Error: &ServiceError{Code: CodeNotFound, Message: "Task not found."}})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := taskFromResponse(&TaskResponse{Error: &ServiceError{Code: CodeInvalid, Message: domain.MsgTitleRequired}})
		var ve *domain.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.EqualError(t, err, domain.MsgTitleRequired)
	})

	t.Run("empty reply", func(t *testing.T) {
		_, err := taskFromResponse(&TaskResponse{})
		assert.Error(t, err)
	})
}
