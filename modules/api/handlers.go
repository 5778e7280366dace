package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/modules/task"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	tasks := m.app.Group("/tasks")

	tasks.Get("/", m.listTasks)
	tasks.Post("/", m.createTask)
	tasks.All("/", methodNotAllowed(fiber.MethodGet, fiber.MethodPost))

	tasks.Get("/summary/", m.summarizeTasks)
	tasks.All("/summary/", methodNotAllowed(fiber.MethodGet))

	tasks.Get("/:id<int>/", m.getTask)
	tasks.Put("/:id<int>/", m.replaceTask)
	tasks.Patch("/:id<int>/", m.patchTask)
	tasks.Delete("/:id<int>/", m.deleteTask)
	tasks.All("/:id<int>/", methodNotAllowed(
		fiber.MethodGet, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete,
	))
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.cfg.Addr,
		},
	})
}

// listTasks handles GET /tasks/.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	tasks, err := m.taskAdapter.ListTasks(c.UserContext(), &task.ListTasksRequest{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Ordering: c.Query("ordering"),
	})
	if err != nil {
		return err
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, toTaskResponse(&tasks[i]))
	}
	return c.JSON(resp)
}

// createTask handles POST /tasks/.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	payload, err := decodePayload(c.Body())
	if err != nil {
		return err
	}

	t, err := m.taskAdapter.CreateTask(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(t))
}

// getTask handles GET /tasks/:id/.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	t, err := m.taskAdapter.GetTask(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toTaskResponse(t))
}

// replaceTask handles PUT /tasks/:id/.
func (m *APIModule) replaceTask(c *fiber.Ctx) error {
	return m.updateTask(c, false)
}

// patchTask handles PATCH /tasks/:id/.
func (m *APIModule) patchTask(c *fiber.Ctx) error {
	return m.updateTask(c, true)
}

func (m *APIModule) updateTask(c *fiber.Ctx, partial bool) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	payload, err := decodePayload(c.Body())
	if err != nil {
		// A missing task wins over a bad body.
		if _, getErr := m.taskAdapter.GetTask(c.UserContext(), id); getErr != nil {
			return getErr
		}
		return err
	}

	t, err := m.taskAdapter.UpdateTask(c.UserContext(), &task.UpdateTaskRequest{
		TaskID:  id,
		Partial: partial,
		Payload: payload,
	})
	if err != nil {
		return err
	}
	return c.JSON(toTaskResponse(t))
}

// deleteTask handles DELETE /tasks/:id/.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := m.taskAdapter.DeleteTask(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// summarizeTasks handles GET /tasks/summary/.
func (m *APIModule) summarizeTasks(c *fiber.Ctx) error {
	counts, err := m.taskAdapter.SummarizeTasks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(counts)
}

// taskID parses the :id path parameter.
func taskID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrNotFound
	}
	return uint(id), nil
}

// decodePayload reads a JSON object body. An empty body is an empty object.
func decodePayload(body []byte) (domain.Payload, error) {
	var p domain.Payload
	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.Payload{}, errInvalidJSON
	}
	return p, nil
}
