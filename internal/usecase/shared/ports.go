package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"firm-digest/internal/domain/firm"
	"firm-digest/internal/domain/job"
	"firm-digest/internal/domain/recipient"
	"firm-digest/internal/domain/task"

	"github.com/google/uuid"
)

// FirmDirectory reads firms and their staff. Lookups by id return
// errs.ErrFirmNotFound / errs.ErrRecipientNotFound when the row is gone.
type FirmDirectory interface {
	ActiveFirms(ctx context.Context) ([]*firm.Firm, error)
	FirmByID(ctx context.Context, id uuid.UUID) (*firm.Firm, error)
	ActiveRecipients(ctx context.Context, firmID uuid.UUID) ([]*recipient.Recipient, error)
	RecipientByID(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error)
}

// TaskSource returns open (not filed_completed) tasks for one scope.
type TaskSource interface {
	OpenTasksForAssignee(ctx context.Context, recipientID uuid.UUID) ([]task.Task, error)
	OpenTasksForFirm(ctx context.Context, firmID uuid.UUID) ([]task.Task, error)
	OpenTasksCreatedBy(ctx context.Context, recipientID uuid.UUID) ([]task.Task, error)
}

// JobRepository is the write side of the notification queue.
type JobRepository interface {
	// Enqueue inserts j unless a job with the same recipient, type and
	// scheduled date exists. created is false for the existing-row case.
	Enqueue(ctx context.Context, j *job.Job) (created bool, err error)
	// ListDue returns claimable jobs, oldest scheduled_for first.
	ListDue(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*job.Job, error)
	// Claim moves an eligible job to processing. It returns
	// errs.ErrJobNotClaimed when another worker got there first.
	Claim(ctx context.Context, id uuid.UUID, now time.Time, maxAttempts int) (*job.Job, error)
	// MarkSent and MarkFailed only touch the row while it still carries the
	// claim identified by claimedAt. A worker whose lease expired and whose
	// job was reclaimed gets errs.ErrJobNotClaimed.
	MarkSent(ctx context.Context, id uuid.UUID, claimedAt time.Time, deliveryID string, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, claimedAt time.Time, lastError string, failedAt time.Time, nextAttemptAt *time.Time) error
	// RequeueStale fails processing jobs claimed before staleBefore so they
	// become retry-eligible, counting the abandoned run as an attempt.
	RequeueStale(ctx context.Context, staleBefore, now time.Time, maxAttempts int) (int64, error)
}

type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Mailer hands a rendered digest to the email provider and returns the
// provider's delivery id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (deliveryID string, err error)
}
