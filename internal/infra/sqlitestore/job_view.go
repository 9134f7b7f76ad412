package sqlitestore

import (
	"context"
	"database/sql"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/infra"
	"firm-digest/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const jobViewSelect = `
SELECT j.id, j.recipient_id, COALESCE(s.name, ''), COALESCE(s.email, ''),
	j.firm_id, j.type, j.scheduled_for, j.scheduled_date, j.status, j.attempt_count, j.last_error,
	j.sent_at, j.delivery_id, j.next_attempt_at, j.created_at, j.updated_at
FROM notification_jobs j
LEFT JOIN staff_users s ON s.id = j.recipient_id`

type JobReadStore struct {
	db *sql.DB
}

func NewJobReadStore(db *sql.DB) *JobReadStore {
	return &JobReadStore{db: db}
}

func (s *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	row := s.db.QueryRowContext(ctx, jobViewSelect+` WHERE j.id = :id`, sql.Named("id", id.String()))
	v, err := scanJobView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find notification job", err)
	}
	return v, nil
}

func (s *JobReadStore) ListByFirmAndDate(ctx context.Context, firmID uuid.UUID, date civil.Date) ([]*queries.JobView, error) {
	return s.list(ctx, jobViewSelect+`
WHERE j.firm_id = :firm_id AND j.scheduled_date = :scheduled_date
ORDER BY COALESCE(s.name, '') ASC, j.id ASC`,
		sql.Named("firm_id", firmID.String()),
		sql.Named("scheduled_date", date.String()),
	)
}

func (s *JobReadStore) ListTerminalFailures(ctx context.Context, maxAttempts, limit int) ([]*queries.JobView, error) {
	return s.list(ctx, jobViewSelect+`
WHERE j.status = 'failed' AND (j.next_attempt_at IS NULL OR j.attempt_count >= :max_attempts)
ORDER BY j.updated_at DESC, j.id ASC
LIMIT :limit`,
		sql.Named("max_attempts", maxAttempts),
		sql.Named("limit", limit),
	)
}

func (s *JobReadStore) CountByStatus(ctx context.Context, firmID uuid.UUID, date civil.Date) (map[job.Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT status, COUNT(*)
FROM notification_jobs
WHERE firm_id = :firm_id AND scheduled_date = :scheduled_date
GROUP BY status`,
		sql.Named("firm_id", firmID.String()),
		sql.Named("scheduled_date", date.String()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count notification jobs", err)
	}
	defer rows.Close()

	counts := make(map[job.Status]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job count", err)
		}
		counts[job.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification job counts", err)
	}
	return counts, nil
}

func (s *JobReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.JobView, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}
	defer rows.Close()

	out := []*queries.JobView{}
	for rows.Next() {
		v, err := scanJobView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return out, nil
}

func scanJobView(s scanner) (*queries.JobView, error) {
	var (
		id, recipientID, firmID, scheduledFor, createdAt, updatedAt string
		lastError, sentAt, deliveryID, nextAttemptAt                sql.NullString
		v                                                           queries.JobView
	)
	if err := s.Scan(
		&id, &recipientID, &v.RecipientName, &v.RecipientEmail,
		&firmID, &v.Type, &scheduledFor, &v.ScheduledDate, &v.Status, &v.AttemptCount, &lastError,
		&sentAt, &deliveryID, &nextAttemptAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if v.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if v.RecipientID, err = uuid.Parse(recipientID); err != nil {
		return nil, err
	}
	if v.FirmID, err = uuid.Parse(firmID); err != nil {
		return nil, err
	}
	if v.ScheduledFor, err = parseTime(scheduledFor); err != nil {
		return nil, err
	}
	if v.SentAt, err = parseTimePtr(sentAt); err != nil {
		return nil, err
	}
	if v.NextAttemptAt, err = parseTimePtr(nextAttemptAt); err != nil {
		return nil, err
	}
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if v.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	v.LastError = stringPtr(lastError)
	v.DeliveryID = stringPtr(deliveryID)
	return &v, nil
}
