package repository

import (
	"context"
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/infra"
	"firm-digest/internal/infra/db"
	"firm-digest/internal/pkg/errs"
	"firm-digest/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobColumns = `id, recipient_id, firm_id, type, scheduled_for, scheduled_date, status,
	attempt_count, last_error, sent_at, delivery_id, claimed_at, next_attempt_at, created_at, updated_at`

// A failed job is due once its backoff has elapsed and attempts remain.
const dueCondition = `(status = 'pending'
	OR (status = 'failed' AND attempt_count < @max_attempts
		AND next_attempt_at IS NOT NULL AND next_attempt_at <= @now))`

const (
	enqueueJobSQL = `
INSERT INTO notification_jobs
	(id, recipient_id, firm_id, type, scheduled_for, scheduled_date, status, attempt_count, created_at, updated_at)
VALUES (@id, @recipient_id, @firm_id, @type, @scheduled_for, @scheduled_date, 'pending', 0, @scheduled_for, @scheduled_for)
ON CONFLICT (recipient_id, type, scheduled_date) DO NOTHING`

	listDueJobsSQL = `
SELECT ` + jobColumns + `
FROM notification_jobs
WHERE ` + dueCondition + `
ORDER BY scheduled_for ASC, id ASC
LIMIT @limit`

	claimJobSQL = `
UPDATE notification_jobs
SET status = 'processing', claimed_at = @now, updated_at = @now
WHERE id = @id AND ` + dueCondition + `
RETURNING ` + jobColumns

	markSentSQL = `
UPDATE notification_jobs
SET status = 'sent', sent_at = @sent_at, delivery_id = @delivery_id, next_attempt_at = NULL, updated_at = @sent_at
WHERE id = @id AND status = 'processing' AND claimed_at = @claimed_at`

	markFailedSQL = `
UPDATE notification_jobs
SET status = 'failed', attempt_count = attempt_count + 1, last_error = @last_error,
	next_attempt_at = @next_attempt_at, updated_at = @failed_at
WHERE id = @id AND status = 'processing' AND claimed_at = @claimed_at`

	requeueStaleSQL = `
UPDATE notification_jobs
SET status = 'failed', attempt_count = attempt_count + 1,
	last_error = 'claim lease expired before delivery completed',
	next_attempt_at = CASE WHEN attempt_count + 1 >= @max_attempts THEN NULL ELSE @now::timestamptz END,
	updated_at = @now
WHERE status = 'processing' AND claimed_at < @stale_before`
)

type jobRow struct {
	ID            uuid.UUID          `db:"id"`
	RecipientID   uuid.UUID          `db:"recipient_id"`
	FirmID        uuid.UUID          `db:"firm_id"`
	Type          string             `db:"type"`
	ScheduledFor  time.Time          `db:"scheduled_for"`
	ScheduledDate pgtype.Date        `db:"scheduled_date"`
	Status        string             `db:"status"`
	AttemptCount  int32              `db:"attempt_count"`
	LastError     pgtype.Text        `db:"last_error"`
	SentAt        pgtype.Timestamptz `db:"sent_at"`
	DeliveryID    pgtype.Text        `db:"delivery_id"`
	ClaimedAt     pgtype.Timestamptz `db:"claimed_at"`
	NextAttemptAt pgtype.Timestamptz `db:"next_attempt_at"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at"`
}

func (r jobRow) toDomain() *job.Job {
	return job.Restore(job.RestoreParams{
		ID:            r.ID,
		RecipientID:   r.RecipientID,
		FirmID:        r.FirmID,
		Type:          job.Type(r.Type),
		ScheduledFor:  r.ScheduledFor,
		ScheduledDate: pgconv.DateFromPgtype(r.ScheduledDate),
		Status:        job.Status(r.Status),
		AttemptCount:  int(r.AttemptCount),
		LastError:     pgconv.StringPtrFromPgtype(r.LastError),
		SentAt:        pgconv.TimePtrFromPgtype(r.SentAt),
		DeliveryID:    pgconv.StringPtrFromPgtype(r.DeliveryID),
		ClaimedAt:     pgconv.TimePtrFromPgtype(r.ClaimedAt),
		NextAttemptAt: pgconv.TimePtrFromPgtype(r.NextAttemptAt),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	})
}

// JobRepository is the Postgres notification queue. Creation relies on the
// (recipient_id, type, scheduled_date) unique constraint and claiming on a
// conditional UPDATE, so concurrent schedulers and workers need no locks.
type JobRepository struct {
	db db.DBTX
}

func NewJobRepository(db db.DBTX) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Enqueue(ctx context.Context, j *job.Job) (bool, error) {
	tag, err := r.db.Exec(ctx, enqueueJobSQL, pgx.NamedArgs{
		"id":             j.ID(),
		"recipient_id":   j.RecipientID(),
		"firm_id":        j.FirmID(),
		"type":           j.Type().String(),
		"scheduled_for":  j.ScheduledFor(),
		"scheduled_date": pgconv.DateToPgtype(j.ScheduledDate()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *JobRepository) ListDue(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*job.Job, error) {
	rows, err := r.db.Query(ctx, listDueJobsSQL, pgx.NamedArgs{
		"now":          now,
		"max_attempts": maxAttempts,
		"limit":        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due notification jobs", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[jobRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan due notification jobs", err)
	}

	out := make([]*job.Job, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (r *JobRepository) Claim(ctx context.Context, id uuid.UUID, now time.Time, maxAttempts int) (*job.Job, error) {
	rows, err := r.db.Query(ctx, claimJobSQL, pgx.NamedArgs{
		"id":           id,
		"now":          now,
		"max_attempts": maxAttempts,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification job", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[jobRow])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, errs.Wrapf(errs.ErrJobNotClaimed, "job %s", id)
		}
		return nil, infra.WrapRepoErr("failed to scan claimed notification job", err)
	}
	return rec.toDomain(), nil
}

func (r *JobRepository) MarkSent(ctx context.Context, id uuid.UUID, claimedAt time.Time, deliveryID string, sentAt time.Time) error {
	tag, err := r.db.Exec(ctx, markSentSQL, pgx.NamedArgs{
		"id":          id,
		"claimed_at":  claimedAt,
		"delivery_id": pgconv.StringToPgtype(deliveryID),
		"sent_at":     sentAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrapf(errs.ErrJobNotClaimed, "job %s is no longer processing", id)
	}
	return nil
}

func (r *JobRepository) MarkFailed(ctx context.Context, id uuid.UUID, claimedAt time.Time, lastError string, failedAt time.Time, nextAttemptAt *time.Time) error {
	tag, err := r.db.Exec(ctx, markFailedSQL, pgx.NamedArgs{
		"id":              id,
		"claimed_at":      claimedAt,
		"last_error":      pgconv.StringToPgtype(lastError),
		"failed_at":       failedAt,
		"next_attempt_at": pgconv.TimePtrToPgtype(nextAttemptAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrapf(errs.ErrJobNotClaimed, "job %s is no longer processing", id)
	}
	return nil
}

func (r *JobRepository) RequeueStale(ctx context.Context, staleBefore, now time.Time, maxAttempts int) (int64, error) {
	tag, err := r.db.Exec(ctx, requeueStaleSQL, pgx.NamedArgs{
		"stale_before": staleBefore,
		"now":          now,
		"max_attempts": maxAttempts,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue stale notification jobs", err)
	}
	return tag.RowsAffected(), nil
}
