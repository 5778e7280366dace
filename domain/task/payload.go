package task

import (
	"strings"
	"time"
)

// Payload carries the client-settable fields of a task. A nil field is absent.
type Payload struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UpdateMode selects how Apply treats an absent title.
type UpdateMode int

const (
	// FullUpdate requires the title to be supplied again.
	FullUpdate UpdateMode = iota
	// PartialUpdate keeps the stored title when none is supplied.
	PartialUpdate
)

// New builds a task from a create payload, applying defaults.
// The returned task has no ID yet.
func New(p Payload, now time.Time) (*Task, error) {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return nil, invalid(MsgTitleRequired)
	}

	t := &Task{
		Priority:  PriorityMedium,
		Status:    StatusPending,
		CreatedAt: now.UTC().Truncate(time.Microsecond),
	}
	if err := t.apply(p, strings.TrimSpace(*p.Title)); err != nil {
		return nil, err
	}
	return t, nil
}

// Apply merges p into t. Every field absent from p keeps its current value.
// Nothing is written when validation fails.
func (t *Task) Apply(p Payload, mode UpdateMode) error {
	title := t.Title
	switch {
	case p.Title != nil:
		title = strings.TrimSpace(*p.Title)
		if title == "" {
			if mode == FullUpdate {
				return invalid(MsgTitleRequiredOnPut)
			}
			return invalid(MsgTitleBlank)
		}
	case mode == FullUpdate:
		return invalid(MsgTitleRequiredOnPut)
	}
	return t.apply(p, title)
}

func (t *Task) apply(p Payload, title string) error {
	description := t.Description
	if p.Description != nil {
		description = *p.Description
	}

	priority := t.Priority
	if p.Priority != nil {
		if !IsValidPriority(*p.Priority) {
			return invalidChoice("priority", priorities)
		}
		priority = Priority(*p.Priority)
	}

	status := t.Status
	if p.Status != nil {
		if !IsValidStatus(*p.Status) {
			return invalidChoice("status", statuses)
		}
		status = Status(*p.Status)
	}

	t.Title = title
	t.Description = description
	t.Priority = priority
	t.Status = status
	return nil
}
