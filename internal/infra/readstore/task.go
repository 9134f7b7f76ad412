package readstore

import (
	"context"
	"log/slog"

	"firm-digest/internal/domain/task"
	"firm-digest/internal/infra"
	"firm-digest/internal/infra/db"
	"firm-digest/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const openTaskSelect = `
SELECT t.id, t.firm_id, t.title, t.due_date, t.status,
	c.name AS client_name, t.assigned_to, a.name AS assignee_name, t.created_by
FROM tasks t
LEFT JOIN clients c ON c.id = t.client_id
LEFT JOIN staff_users a ON a.id = t.assigned_to
WHERE t.status <> 'filed_completed'`

const (
	openTasksForAssigneeSQL = openTaskSelect + ` AND t.assigned_to = @recipient_id`
	openTasksForFirmSQL     = openTaskSelect + ` AND t.firm_id = @firm_id`
	openTasksCreatedBySQL   = openTaskSelect + ` AND t.created_by = @recipient_id`
)

type taskRow struct {
	ID           uuid.UUID          `db:"id"`
	FirmID       uuid.UUID          `db:"firm_id"`
	Title        string             `db:"title"`
	DueDate      pgtype.Timestamptz `db:"due_date"`
	Status       string             `db:"status"`
	ClientName   pgtype.Text        `db:"client_name"`
	AssignedTo   pgtype.UUID        `db:"assigned_to"`
	AssigneeName pgtype.Text        `db:"assignee_name"`
	CreatedBy    pgtype.UUID        `db:"created_by"`
}

// TaskReadStore loads open tasks. Ordering is left to task.Summarize.
type TaskReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewTaskReadStore(db db.DBTX, logger *slog.Logger) *TaskReadStore {
	return &TaskReadStore{db: db, logger: logger}
}

func (s *TaskReadStore) OpenTasksForAssignee(ctx context.Context, recipientID uuid.UUID) ([]task.Task, error) {
	return s.list(ctx, openTasksForAssigneeSQL, pgx.NamedArgs{"recipient_id": recipientID})
}

func (s *TaskReadStore) OpenTasksForFirm(ctx context.Context, firmID uuid.UUID) ([]task.Task, error) {
	return s.list(ctx, openTasksForFirmSQL, pgx.NamedArgs{"firm_id": firmID})
}

func (s *TaskReadStore) OpenTasksCreatedBy(ctx context.Context, recipientID uuid.UUID) ([]task.Task, error) {
	return s.list(ctx, openTasksCreatedBySQL, pgx.NamedArgs{"recipient_id": recipientID})
}

func (s *TaskReadStore) list(ctx context.Context, query string, args pgx.NamedArgs) ([]task.Task, error) {
	rows, err := s.db.Query(ctx, query, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open tasks", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[taskRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan open tasks", err)
	}

	out := make([]task.Task, 0, len(recs))
	for _, rec := range recs {
		status, err := task.NewStatus(rec.Status)
		if err != nil {
			s.logger.Warn("skipping task with unknown status", "task_id", rec.ID.String(), "status", rec.Status)
			continue
		}
		out = append(out, task.Task{
			ID:           rec.ID,
			FirmID:       rec.FirmID,
			Title:        rec.Title,
			DueDate:      pgconv.TimeFromPgtype(rec.DueDate),
			Status:       status,
			ClientName:   pgconv.StringPtrFromPgtype(rec.ClientName),
			AssigneeID:   pgconv.UUIDPtrFromPgtype(rec.AssignedTo),
			AssigneeName: pgconv.StringPtrFromPgtype(rec.AssigneeName),
			CreatedBy:    pgconv.UUIDPtrFromPgtype(rec.CreatedBy),
		})
	}
	return out, nil
}
