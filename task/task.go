package task

import (
	"fmt"
	"strings"
	"time"
)

// now is replaced in tests.
var now = time.Now

// Task is a single to-do item.
type Task struct {
	ID          uint32   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Category    *string  `json:"category,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// New creates a pending task. The title must contain a non-space character.
// Stores assign their own identifier on add, so id only matters for records
// built outside a store.
func New(id uint32, title string, priority Priority) (*Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		Status:    StatusPending,
		CreatedAt: now().Format(time.DateTime),
	}, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ValidationErrorf("title cannot be empty")
	}
	return nil
}

// WithDescription returns a copy of t with the description set.
func (t *Task) WithDescription(desc string) *Task {
	c := *t
	c.Description = &desc
	return &c
}

// WithCategory returns a copy of t with the category set.
func (t *Task) WithCategory(category string) *Task {
	c := *t
	c.Category = &category
	return &c
}

func (t *Task) SetStatus(status Status) {
	t.Status = status
}

func (t *Task) SetPriority(priority Priority) {
	t.Priority = priority
}

// SetTitle replaces the title, applying the same check as New.
func (t *Task) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.Title = title
	return nil
}

// Validate checks a task decoded from outside New.
func (t *Task) Validate() error {
	if t == nil {
		return ValidationErrorf("missing task")
	}
	if err := validateTitle(t.Title); err != nil {
		return err
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// GetID and SetID let generic stores key and number tasks.
func (t *Task) GetID() uint32 {
	return t.ID
}

func (t *Task) SetID(id uint32) {
	t.ID = id
}

// String renders "[id] [STATUS] [PRIORITY] title (category)".
func (t *Task) String() string {
	var category string
	if t.Category != nil {
		category = fmt.Sprintf(" (%s)", *t.Category)
	}
	return fmt.Sprintf("[%d] [%s] [%s] %s%s", t.ID, t.Status, t.Priority, t.Title, category)
}
