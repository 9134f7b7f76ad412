package sqlitestore

import (
	"context"
	"database/sql"
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/infra"
	"firm-digest/internal/pkg/errs"

	"github.com/google/uuid"
)

const jobColumns = `id, recipient_id, firm_id, type, scheduled_for, scheduled_date, status,
	attempt_count, last_error, sent_at, delivery_id, claimed_at, next_attempt_at, created_at, updated_at`

const dueCondition = `(status = 'pending'
	OR (status = 'failed' AND attempt_count < :max_attempts
		AND next_attempt_at IS NOT NULL AND next_attempt_at <= :now))`

const (
	enqueueJobSQL = `
INSERT INTO notification_jobs
	(id, recipient_id, firm_id, type, scheduled_for, scheduled_date, status, attempt_count, created_at, updated_at)
VALUES (:id, :recipient_id, :firm_id, :type, :scheduled_for, :scheduled_date, 'pending', 0, :scheduled_for, :scheduled_for)
ON CONFLICT (recipient_id, type, scheduled_date) DO NOTHING`

	listDueJobsSQL = `
SELECT ` + jobColumns + `
FROM notification_jobs
WHERE ` + dueCondition + `
ORDER BY scheduled_for ASC, id ASC
LIMIT :limit`

	claimJobSQL = `
UPDATE notification_jobs
SET status = 'processing', claimed_at = :now, updated_at = :now
WHERE id = :id AND ` + dueCondition + `
RETURNING ` + jobColumns

	markSentSQL = `
UPDATE notification_jobs
SET status = 'sent', sent_at = :sent_at, delivery_id = :delivery_id, next_attempt_at = NULL, updated_at = :sent_at
WHERE id = :id AND status = 'processing' AND claimed_at = :claimed_at`

	markFailedSQL = `
UPDATE notification_jobs
SET status = 'failed', attempt_count = attempt_count + 1, last_error = :last_error,
	next_attempt_at = :next_attempt_at, updated_at = :failed_at
WHERE id = :id AND status = 'processing' AND claimed_at = :claimed_at`

	requeueStaleSQL = `
UPDATE notification_jobs
SET status = 'failed', attempt_count = attempt_count + 1,
	last_error = 'claim lease expired before delivery completed',
	next_attempt_at = CASE WHEN attempt_count + 1 >= :max_attempts THEN NULL ELSE :now END,
	updated_at = :now
WHERE status = 'processing' AND claimed_at < :stale_before`
)

// JobRepository is the SQLite notification queue. The connection pool holds
// a single connection, so each statement runs alone.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Enqueue(ctx context.Context, j *job.Job) (bool, error) {
	res, err := r.db.ExecContext(ctx, enqueueJobSQL,
		sql.Named("id", j.ID().String()),
		sql.Named("recipient_id", j.RecipientID().String()),
		sql.Named("firm_id", j.FirmID().String()),
		sql.Named("type", j.Type().String()),
		sql.Named("scheduled_for", formatTime(j.ScheduledFor())),
		sql.Named("scheduled_date", j.ScheduledDate().String()),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, infra.WrapRepoErr("failed to read enqueue result", err)
	}
	return n == 1, nil
}

func (r *JobRepository) ListDue(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*job.Job, error) {
	rows, err := r.db.QueryContext(ctx, listDueJobsSQL,
		sql.Named("now", formatTime(now)),
		sql.Named("max_attempts", maxAttempts),
		sql.Named("limit", limit),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due notification jobs", err)
	}
	defer rows.Close()

	var out []*job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan due notification job", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due notification jobs", err)
	}
	return out, nil
}

func (r *JobRepository) Claim(ctx context.Context, id uuid.UUID, now time.Time, maxAttempts int) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, claimJobSQL,
		sql.Named("id", id.String()),
		sql.Named("now", formatTime(now)),
		sql.Named("max_attempts", maxAttempts),
	)
	j, err := scanJob(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, errs.Wrapf(errs.ErrJobNotClaimed, "job %s", id)
		}
		return nil, infra.WrapRepoErr("failed to claim notification job", err)
	}
	return j, nil
}

func (r *JobRepository) MarkSent(ctx context.Context, id uuid.UUID, claimedAt time.Time, deliveryID string, sentAt time.Time) error {
	res, err := r.db.ExecContext(ctx, markSentSQL,
		sql.Named("id", id.String()),
		sql.Named("claimed_at", formatTime(claimedAt)),
		sql.Named("delivery_id", deliveryID),
		sql.Named("sent_at", formatTime(sentAt)),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return requireClaimed(res, id)
}

func (r *JobRepository) MarkFailed(ctx context.Context, id uuid.UUID, claimedAt time.Time, lastError string, failedAt time.Time, nextAttemptAt *time.Time) error {
	res, err := r.db.ExecContext(ctx, markFailedSQL,
		sql.Named("id", id.String()),
		sql.Named("claimed_at", formatTime(claimedAt)),
		sql.Named("last_error", lastError),
		sql.Named("failed_at", formatTime(failedAt)),
		sql.Named("next_attempt_at", formatTimePtr(nextAttemptAt)),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return requireClaimed(res, id)
}

func (r *JobRepository) RequeueStale(ctx context.Context, staleBefore, now time.Time, maxAttempts int) (int64, error) {
	res, err := r.db.ExecContext(ctx, requeueStaleSQL,
		sql.Named("stale_before", formatTime(staleBefore)),
		sql.Named("now", formatTime(now)),
		sql.Named("max_attempts", maxAttempts),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue stale notification jobs", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read requeue result", err)
	}
	return n, nil
}

func requireClaimed(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return infra.WrapRepoErr("failed to read update result", err)
	}
	if n == 0 {
		return errs.Wrapf(errs.ErrJobNotClaimed, "job %s is no longer processing", id)
	}
	return nil
}

func scanJob(s scanner) (*job.Job, error) {
	var (
		id, recipientID, firmID, typ, scheduledFor, scheduledDate, status string
		attemptCount                                                      int
		lastError, sentAt, deliveryID, claimedAt, nextAttemptAt           sql.NullString
		createdAt, updatedAt                                              string
	)
	if err := s.Scan(
		&id, &recipientID, &firmID, &typ, &scheduledFor, &scheduledDate, &status,
		&attemptCount, &lastError, &sentAt, &deliveryID, &claimedAt, &nextAttemptAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	p := job.RestoreParams{
		Type:         job.Type(typ),
		Status:       job.Status(status),
		AttemptCount: attemptCount,
		LastError:    stringPtr(lastError),
		DeliveryID:   stringPtr(deliveryID),
	}
	var err error
	if p.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if p.RecipientID, err = uuid.Parse(recipientID); err != nil {
		return nil, err
	}
	if p.FirmID, err = uuid.Parse(firmID); err != nil {
		return nil, err
	}
	if p.ScheduledFor, err = parseTime(scheduledFor); err != nil {
		return nil, err
	}
	if p.ScheduledDate, err = parseDate(scheduledDate); err != nil {
		return nil, err
	}
	if p.SentAt, err = parseTimePtr(sentAt); err != nil {
		return nil, err
	}
	if p.ClaimedAt, err = parseTimePtr(claimedAt); err != nil {
		return nil, err
	}
	if p.NextAttemptAt, err = parseTimePtr(nextAttemptAt); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return job.Restore(p), nil
}
