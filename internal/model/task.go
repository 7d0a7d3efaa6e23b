package model

import (
	"errors"
	"strings"
)

var ErrEmptyDescription = errors.New("model: task description is required")

// Task is a single entry of the list. Its identity is its position in the
// owning store; there is no stable ID.
type Task struct {
	Description string
	Completed   bool
}

// NewTask trims the description and returns an open task.
func NewTask(description string) (Task, error) {
	t := Task{Description: strings.TrimSpace(description)}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Glyph is the status mark shown between brackets in a listing.
func (t Task) Glyph() string {
	if t.Completed {
		return "✓"
	}
	return " "
}
