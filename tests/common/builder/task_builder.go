//go:build unit || e2e

package builder

import (
	"time"

	"firm-digest/internal/domain/task"

	"github.com/google/uuid"
)

type TaskBuilder struct {
	task task.Task
}

func NewTaskBuilder() *TaskBuilder {
	client := "Sharma & Co"
	return &TaskBuilder{task: task.Task{
		ID:         uuid.New(),
		FirmID:     uuid.New(),
		Title:      "GST return",
		Status:     task.StatusAssigned,
		ClientName: &client,
	}}
}

func (b *TaskBuilder) With(mutate func(*task.Task)) *TaskBuilder {
	mutate(&b.task)
	return b
}

func (b *TaskBuilder) Titled(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) Due(t time.Time) *TaskBuilder {
	b.task.DueDate = t
	return b
}

func (b *TaskBuilder) Status(s task.Status) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) AssignedTo(id uuid.UUID, name string) *TaskBuilder {
	b.task.AssigneeID = &id
	b.task.AssigneeName = &name
	return b
}

func (b *TaskBuilder) Build() task.Task {
	return b.task
}
