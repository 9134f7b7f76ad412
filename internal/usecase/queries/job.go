package queries

//go:generate mockgen -source=job.go -destination=../../../tests/mock/queries/job.go -package=queriesmock

import (
	"context"
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/infra"
	"firm-digest/internal/pkg/errs"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const (
	defaultFailedLimit = 50
	maxFailedLimit     = 500
)

// JobView is the operator-facing projection of a notification job.
type JobView struct {
	ID             uuid.UUID  `json:"id"`
	RecipientID    uuid.UUID  `json:"recipient_id"`
	RecipientName  string     `json:"recipient_name"`
	RecipientEmail string     `json:"recipient_email"`
	FirmID         uuid.UUID  `json:"firm_id"`
	Type           string     `json:"type"`
	ScheduledFor   time.Time  `json:"scheduled_for"`
	ScheduledDate  string     `json:"scheduled_date"`
	Status         string     `json:"status"`
	AttemptCount   int        `json:"attempt_count"`
	LastError      *string    `json:"last_error,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	DeliveryID     *string    `json:"delivery_id,omitempty"`
	NextAttemptAt  *time.Time `json:"next_attempt_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FirmDayStatus summarizes one firm's jobs for one local date.
type FirmDayStatus struct {
	FirmID uuid.UUID      `json:"firm_id"`
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type JobReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	ListByFirmAndDate(ctx context.Context, firmID uuid.UUID, date civil.Date) ([]*JobView, error)
	// ListTerminalFailures returns failed jobs no worker will retry, newest first.
	ListTerminalFailures(ctx context.Context, maxAttempts, limit int) ([]*JobView, error)
	CountByStatus(ctx context.Context, firmID uuid.UUID, date civil.Date) (map[job.Status]int, error)
}

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	ListByFirmAndDate(ctx context.Context, firmID uuid.UUID, date string) ([]*JobView, error)
	ListFailed(ctx context.Context, limit int) ([]*JobView, error)
	StatusCounts(ctx context.Context, firmID uuid.UUID, date string) (*FirmDayStatus, error)
}

type jobQueriesImpl struct {
	repo        JobReadStore
	maxAttempts int
}

func NewJobQueries(repo JobReadStore, policy job.RetryPolicy) JobQueries {
	return &jobQueriesImpl{repo: repo, maxAttempts: policy.MaxAttempts}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*JobView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *jobQueriesImpl) ListByFirmAndDate(ctx context.Context, firmID uuid.UUID, date string) ([]*JobView, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return q.repo.ListByFirmAndDate(ctx, firmID, d)
}

func (q *jobQueriesImpl) ListFailed(ctx context.Context, limit int) ([]*JobView, error) {
	switch {
	case limit <= 0:
		limit = defaultFailedLimit
	case limit > maxFailedLimit:
		limit = maxFailedLimit
	}
	return q.repo.ListTerminalFailures(ctx, q.maxAttempts, limit)
}

func (q *jobQueriesImpl) StatusCounts(ctx context.Context, firmID uuid.UUID, date string) (*FirmDayStatus, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	counts, err := q.repo.CountByStatus(ctx, firmID, d)
	if err != nil {
		return nil, err
	}

	out := &FirmDayStatus{FirmID: firmID, Date: d.String(), Counts: make(map[string]int, len(job.AllStatuses()))}
	for _, s := range job.AllStatuses() {
		out.Counts[s.String()] = counts[s]
		out.Total += counts[s]
	}
	return out, nil
}

func parseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil || !d.IsValid() {
		return civil.Date{}, errs.Wrapf(errs.ErrInvalidDate, "%q is not YYYY-MM-DD", s)
	}
	return d, nil
}
