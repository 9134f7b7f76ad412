package request

import "time"

type ListJobsQuery struct {
	FirmID string `form:"firm_id" binding:"required,uuid"`
	Date   string `form:"date" binding:"required"`
}

type FirmStatusQuery struct {
	Date string `form:"date" binding:"required"`
}

type ListFailedQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// RunPassRequest lets an operator evaluate the window at a chosen instant.
// An empty body means now.
type RunPassRequest struct {
	At *time.Time `json:"at"`
}
