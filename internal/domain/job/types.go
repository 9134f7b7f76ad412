package job

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid job status")
	ErrInvalidType   = errors.New("invalid job type")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusSent, StatusFailed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AllStatuses lists statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusSent, StatusFailed}
}

type Type string

const (
	TypeDayEndReminder Type = "day_end_reminder"
)

func (t Type) String() string {
	return string(t)
}

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeDayEndReminder:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

// MaxErrorLength bounds last_error so a provider dump cannot bloat the row.
const MaxErrorLength = 500
