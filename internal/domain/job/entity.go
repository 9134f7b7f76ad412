package job

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Job is one scheduled digest delivery. The (recipientID, jobType,
// scheduledDate) triple is unique across the queue.
type Job struct {
	id            uuid.UUID
	recipientID   uuid.UUID
	firmID        uuid.UUID
	jobType       Type
	scheduledFor  time.Time
	scheduledDate civil.Date
	status        Status
	attemptCount  int
	lastError     *string
	sentAt        *time.Time
	deliveryID    *string
	claimedAt     *time.Time
	nextAttemptAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDayEndReminder(recipientID, firmID uuid.UUID, scheduledFor time.Time, scheduledDate civil.Date) *Job {
	return &Job{
		id:            uuid.New(),
		recipientID:   recipientID,
		firmID:        firmID,
		jobType:       TypeDayEndReminder,
		scheduledFor:  scheduledFor,
		scheduledDate: scheduledDate,
		status:        StatusPending,
		createdAt:     scheduledFor,
		updatedAt:     scheduledFor,
	}
}

type RestoreParams struct {
	ID            uuid.UUID
	RecipientID   uuid.UUID
	FirmID        uuid.UUID
	Type          Type
	ScheduledFor  time.Time
	ScheduledDate civil.Date
	Status        Status
	AttemptCount  int
	LastError     *string
	SentAt        *time.Time
	DeliveryID    *string
	ClaimedAt     *time.Time
	NextAttemptAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Restore rebuilds a job from persisted state.
func Restore(p RestoreParams) *Job {
	return &Job{
		id:            p.ID,
		recipientID:   p.RecipientID,
		firmID:        p.FirmID,
		jobType:       p.Type,
		scheduledFor:  p.ScheduledFor,
		scheduledDate: p.ScheduledDate,
		status:        p.Status,
		attemptCount:  p.AttemptCount,
		lastError:     p.LastError,
		sentAt:        p.SentAt,
		deliveryID:    p.DeliveryID,
		claimedAt:     p.ClaimedAt,
		nextAttemptAt: p.NextAttemptAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (j *Job) ID() uuid.UUID             { return j.id }
func (j *Job) RecipientID() uuid.UUID    { return j.recipientID }
func (j *Job) FirmID() uuid.UUID         { return j.firmID }
func (j *Job) Type() Type                { return j.jobType }
func (j *Job) ScheduledFor() time.Time   { return j.scheduledFor }
func (j *Job) ScheduledDate() civil.Date { return j.scheduledDate }
func (j *Job) Status() Status            { return j.status }
func (j *Job) AttemptCount() int         { return j.attemptCount }
func (j *Job) LastError() *string        { return j.lastError }
func (j *Job) SentAt() *time.Time        { return j.sentAt }
func (j *Job) DeliveryID() *string       { return j.deliveryID }
func (j *Job) ClaimedAt() *time.Time     { return j.claimedAt }
func (j *Job) NextAttemptAt() *time.Time { return j.nextAttemptAt }
func (j *Job) CreatedAt() time.Time      { return j.createdAt }
func (j *Job) UpdatedAt() time.Time      { return j.updatedAt }
