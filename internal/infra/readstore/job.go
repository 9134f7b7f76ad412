package readstore

import (
	"context"
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/infra"
	"firm-digest/internal/infra/db"
	"firm-digest/internal/pkg/pgconv"
	"firm-digest/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobViewSelect = `
SELECT j.id, j.recipient_id, COALESCE(s.name, '') AS recipient_name, COALESCE(s.email, '') AS recipient_email,
	j.firm_id, j.type, j.scheduled_for, j.scheduled_date, j.status, j.attempt_count, j.last_error,
	j.sent_at, j.delivery_id, j.next_attempt_at, j.created_at, j.updated_at
FROM notification_jobs j
LEFT JOIN staff_users s ON s.id = j.recipient_id`

const (
	findJobByIDSQL = jobViewSelect + `
WHERE j.id = @id`

	listJobsByFirmAndDateSQL = jobViewSelect + `
WHERE j.firm_id = @firm_id AND j.scheduled_date = @scheduled_date
ORDER BY recipient_name ASC, j.id ASC`

	listTerminalFailuresSQL = jobViewSelect + `
WHERE j.status = 'failed' AND (j.next_attempt_at IS NULL OR j.attempt_count >= @max_attempts)
ORDER BY j.updated_at DESC, j.id ASC
LIMIT @limit`

	countJobsByStatusSQL = `
SELECT status, COUNT(*) AS count
FROM notification_jobs
WHERE firm_id = @firm_id AND scheduled_date = @scheduled_date
GROUP BY status`
)

type jobViewRow struct {
	ID             uuid.UUID          `db:"id"`
	RecipientID    uuid.UUID          `db:"recipient_id"`
	RecipientName  string             `db:"recipient_name"`
	RecipientEmail string             `db:"recipient_email"`
	FirmID         uuid.UUID          `db:"firm_id"`
	Type           string             `db:"type"`
	ScheduledFor   time.Time          `db:"scheduled_for"`
	ScheduledDate  pgtype.Date        `db:"scheduled_date"`
	Status         string             `db:"status"`
	AttemptCount   int32              `db:"attempt_count"`
	LastError      pgtype.Text        `db:"last_error"`
	SentAt         pgtype.Timestamptz `db:"sent_at"`
	DeliveryID     pgtype.Text        `db:"delivery_id"`
	NextAttemptAt  pgtype.Timestamptz `db:"next_attempt_at"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
}

type statusCountRow struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type JobReadStore struct {
	db db.DBTX
}

func NewJobReadStore(db db.DBTX) *JobReadStore {
	return &JobReadStore{db: db}
}

func (s *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	rows, err := s.db.Query(ctx, findJobByIDSQL, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notification job", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[jobViewRow])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan notification job", err)
	}
	return toJobView(row), nil
}

func (s *JobReadStore) ListByFirmAndDate(ctx context.Context, firmID uuid.UUID, date civil.Date) ([]*queries.JobView, error) {
	rows, err := s.db.Query(ctx, listJobsByFirmAndDateSQL, pgx.NamedArgs{
		"firm_id":        firmID,
		"scheduled_date": pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}
	return collectJobViews(rows)
}

func (s *JobReadStore) ListTerminalFailures(ctx context.Context, maxAttempts, limit int) ([]*queries.JobView, error) {
	rows, err := s.db.Query(ctx, listTerminalFailuresSQL, pgx.NamedArgs{
		"max_attempts": maxAttempts,
		"limit":        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list failed notification jobs", err)
	}
	return collectJobViews(rows)
}

func (s *JobReadStore) CountByStatus(ctx context.Context, firmID uuid.UUID, date civil.Date) (map[job.Status]int, error) {
	rows, err := s.db.Query(ctx, countJobsByStatusSQL, pgx.NamedArgs{
		"firm_id":        firmID,
		"scheduled_date": pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count notification jobs", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[statusCountRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification job counts", err)
	}

	counts := make(map[job.Status]int, len(recs))
	for _, rec := range recs {
		counts[job.Status(rec.Status)] = int(rec.Count)
	}
	return counts, nil
}

func collectJobViews(rows pgx.Rows) ([]*queries.JobView, error) {
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[jobViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification jobs", err)
	}
	out := make([]*queries.JobView, len(recs))
	for i, rec := range recs {
		out[i] = toJobView(rec)
	}
	return out, nil
}

func toJobView(row jobViewRow) *queries.JobView {
	return &queries.JobView{
		ID:             row.ID,
		RecipientID:    row.RecipientID,
		RecipientName:  row.RecipientName,
		RecipientEmail: row.RecipientEmail,
		FirmID:         row.FirmID,
		Type:           row.Type,
		ScheduledFor:   row.ScheduledFor,
		ScheduledDate:  pgconv.DateFromPgtype(row.ScheduledDate).String(),
		Status:         row.Status,
		AttemptCount:   int(row.AttemptCount),
		LastError:      pgconv.StringPtrFromPgtype(row.LastError),
		SentAt:         pgconv.TimePtrFromPgtype(row.SentAt),
		DeliveryID:     pgconv.StringPtrFromPgtype(row.DeliveryID),
		NextAttemptAt:  pgconv.TimePtrFromPgtype(row.NextAttemptAt),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
