package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is a read-only projection of a firm's work item.
type Task struct {
	ID           uuid.UUID
	FirmID       uuid.UUID
	Title        string
	DueDate      time.Time // zero when the task has no due date
	Status       Status
	ClientName   *string
	AssigneeID   *uuid.UUID
	AssigneeName *string
	CreatedBy    *uuid.UUID
}

func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}
