//go:build unit || e2e

package builder

import (
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type JobBuilder struct {
	Params job.RestoreParams
}

func NewJobBuilder() *JobBuilder {
	scheduled := time.Date(2025, 1, 15, 13, 0, 0, 0, time.UTC)
	return &JobBuilder{Params: job.RestoreParams{
		ID:            uuid.New(),
		RecipientID:   uuid.New(),
		FirmID:        uuid.New(),
		Type:          job.TypeDayEndReminder,
		ScheduledFor:  scheduled,
		ScheduledDate: civil.Date{Year: 2025, Month: time.January, Day: 15},
		Status:        job.StatusPending,
		CreatedAt:     scheduled,
		UpdatedAt:     scheduled,
	}}
}

func (b *JobBuilder) With(mutate func(*job.RestoreParams)) *JobBuilder {
	mutate(&b.Params)
	return b
}

func (b *JobBuilder) For(recipientID, firmID uuid.UUID) *JobBuilder {
	b.Params.RecipientID = recipientID
	b.Params.FirmID = firmID
	return b
}

func (b *JobBuilder) Processing(attempts int) *JobBuilder {
	claimed := b.Params.ScheduledFor
	b.Params.Status = job.StatusProcessing
	b.Params.AttemptCount = attempts
	b.Params.ClaimedAt = &claimed
	return b
}

func (b *JobBuilder) BuildDomain() *job.Job {
	return job.Restore(b.Params)
}

func (b *JobBuilder) BuildView() *queries.JobView {
	p := b.Params
	return &queries.JobView{
		ID:             p.ID,
		RecipientID:    p.RecipientID,
		RecipientName:  "Asha",
		RecipientEmail: "asha@acme.example",
		FirmID:         p.FirmID,
		Type:           p.Type.String(),
		ScheduledFor:   p.ScheduledFor,
		ScheduledDate:  p.ScheduledDate.String(),
		Status:         p.Status.String(),
		AttemptCount:   p.AttemptCount,
		LastError:      p.LastError,
		SentAt:         p.SentAt,
		DeliveryID:     p.DeliveryID,
		NextAttemptAt:  p.NextAttemptAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
