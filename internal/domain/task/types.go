package task

import "errors"

var ErrInvalidStatus = errors.New("invalid task status")

type Status string

const (
	StatusAssigned           Status = "assigned"
	StatusInProgress         Status = "in_progress"
	StatusAwaitingClientData Status = "awaiting_client_data"
	StatusReadyForReview     Status = "ready_for_review"
	StatusFiledCompleted     Status = "filed_completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusAwaitingClientData, StatusReadyForReview, StatusFiledCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsOpen() bool {
	return s != StatusFiledCompleted
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
