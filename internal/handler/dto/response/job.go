package response

import (
	"time"

	"firm-digest/internal/usecase/commands"
	"firm-digest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type JobResponse struct {
	ID             uuid.UUID  `json:"id"`
	RecipientID    uuid.UUID  `json:"recipientId"`
	RecipientName  string     `json:"recipientName"`
	RecipientEmail string     `json:"recipientEmail"`
	FirmID         uuid.UUID  `json:"firmId"`
	Type           string     `json:"type"`
	ScheduledFor   time.Time  `json:"scheduledFor"`
	ScheduledDate  string     `json:"scheduledDate"`
	Status         string     `json:"status"`
	AttemptCount   int        `json:"attemptCount"`
	LastError      *string    `json:"lastError,omitempty"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	DeliveryID     *string    `json:"deliveryId,omitempty"`
	NextAttemptAt  *time.Time `json:"nextAttemptAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type JobListResponse struct {
	Jobs  []*JobResponse `json:"jobs"`
	Count int            `json:"count"`
}

type FirmStatusResponse struct {
	FirmID uuid.UUID      `json:"firmId"`
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type PassResultResponse struct {
	FirmsScanned  int `json:"firmsScanned"`
	FirmsInWindow int `json:"firmsInWindow"`
	JobsCreated   int `json:"jobsCreated"`
	JobsExisting  int `json:"jobsExisting"`
	Failures      int `json:"failures"`
}

type BatchResultResponse struct {
	Requeued int64 `json:"requeued"`
	Listed   int   `json:"listed"`
	Claimed  int   `json:"claimed"`
	Skipped  int   `json:"skipped"`
	Sent     int   `json:"sent"`
	Failed   int   `json:"failed"`
}

func FromJobView(v *queries.JobView) *JobResponse {
	var out JobResponse
	_ = copier.Copy(&out, v)
	return &out
}

func FromJobViews(vs []*queries.JobView) *JobListResponse {
	jobs := make([]*JobResponse, len(vs))
	for i, v := range vs {
		jobs[i] = FromJobView(v)
	}
	return &JobListResponse{Jobs: jobs, Count: len(jobs)}
}

func FromFirmDayStatus(s *queries.FirmDayStatus) *FirmStatusResponse {
	var out FirmStatusResponse
	_ = copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true})
	return &out
}

func FromPassResult(r *commands.PassResult) *PassResultResponse {
	var out PassResultResponse
	_ = copier.Copy(&out, r)
	return &out
}

func FromBatchResult(r *commands.BatchResult) *BatchResultResponse {
	var out BatchResultResponse
	_ = copier.Copy(&out, r)
	return &out
}
