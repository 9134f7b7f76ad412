package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"firm-digest/internal/domain/task"
	"firm-digest/internal/infra"

	"github.com/google/uuid"
)

const openTaskSelect = `
SELECT t.id, t.firm_id, t.title, t.due_date, t.status,
	c.name, t.assigned_to, a.name, t.created_by
FROM tasks t
LEFT JOIN clients c ON c.id = t.client_id
LEFT JOIN staff_users a ON a.id = t.assigned_to
WHERE t.status <> 'filed_completed'`

type TaskReadStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewTaskReadStore(db *sql.DB, logger *slog.Logger) *TaskReadStore {
	return &TaskReadStore{db: db, logger: logger}
}

func (s *TaskReadStore) OpenTasksForAssignee(ctx context.Context, recipientID uuid.UUID) ([]task.Task, error) {
	return s.list(ctx, openTaskSelect+` AND t.assigned_to = :id`, recipientID)
}

func (s *TaskReadStore) OpenTasksForFirm(ctx context.Context, firmID uuid.UUID) ([]task.Task, error) {
	return s.list(ctx, openTaskSelect+` AND t.firm_id = :id`, firmID)
}

func (s *TaskReadStore) OpenTasksCreatedBy(ctx context.Context, recipientID uuid.UUID) ([]task.Task, error) {
	return s.list(ctx, openTaskSelect+` AND t.created_by = :id`, recipientID)
}

func (s *TaskReadStore) list(ctx context.Context, query string, id uuid.UUID) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, sql.Named("id", id.String()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open tasks", err)
	}
	defer rows.Close()

	var out []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			var bad taskDataError
			if errors.As(err, &bad) {
				s.logger.Warn("skipping malformed task", "task_id", bad.taskID, "error", bad.err)
				continue
			}
			return nil, infra.WrapRepoErr("failed to scan open task", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate open tasks", err)
	}
	return out, nil
}

type taskDataError struct {
	taskID string
	err    error
}

func (e taskDataError) Error() string { return e.taskID + ": " + e.err.Error() }

func scanTask(s scanner) (task.Task, error) {
	var (
		id, firmID, title, status                     string
		dueDate, clientName, assignedTo, assigneeName sql.NullString
		createdBy                                     sql.NullString
	)
	if err := s.Scan(&id, &firmID, &title, &dueDate, &status, &clientName, &assignedTo, &assigneeName, &createdBy); err != nil {
		return task.Task{}, err
	}

	var (
		t   task.Task
		err error
	)
	bad := func(err error) (task.Task, error) { return task.Task{}, taskDataError{taskID: id, err: err} }

	if t.ID, err = uuid.Parse(id); err != nil {
		return bad(err)
	}
	if t.FirmID, err = uuid.Parse(firmID); err != nil {
		return bad(err)
	}
	if t.Status, err = task.NewStatus(status); err != nil {
		return bad(err)
	}
	if due, err := parseTimePtr(dueDate); err != nil {
		return bad(err)
	} else if due != nil {
		t.DueDate = *due
	}
	if t.AssigneeID, err = uuidPtr(assignedTo); err != nil {
		return bad(err)
	}
	if t.CreatedBy, err = uuidPtr(createdBy); err != nil {
		return bad(err)
	}
	t.Title = title
	t.ClientName = stringPtr(clientName)
	t.AssigneeName = stringPtr(assigneeName)
	return t, nil
}

func uuidPtr(ns sql.NullString) (*uuid.UUID, error) {
	if !ns.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
