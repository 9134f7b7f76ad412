package task

import (
	"cmp"
	"slices"
	"time"
)

// Summary groups open tasks into the buckets a digest renders. The due-date
// buckets and the status buckets are independent, so one task may appear in
// several of them.
type Summary struct {
	Overdue        []Task
	Today          []Task
	Tomorrow       []Task
	Remaining      []Task
	Review         []Task
	AwaitingClient []Task
	TotalCount     int
}

func (s Summary) IsEmpty() bool {
	return s.TotalCount == 0
}

// Summarize classifies tasks relative to now. Day boundaries are taken in
// now's location, so callers pass now already converted to the firm's zone.
//
//   - Overdue: due strictly before now
//   - Today / Tomorrow: due inside that local calendar day
//   - Remaining: due after the end of tomorrow, or no due date at all
//   - Review / AwaitingClient: by status, regardless of due date
//
// filed_completed tasks are dropped before classification.
func Summarize(now time.Time, tasks []Task) Summary {
	startOfToday := startOfDay(now)
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)
	startOfDayAfter := startOfToday.AddDate(0, 0, 2)

	open := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status.IsOpen() {
			open = append(open, t)
		}
	}
	slices.SortStableFunc(open, compareTasks)

	var s Summary
	s.TotalCount = len(open)
	for _, t := range open {
		if t.HasDueDate() {
			due := t.DueDate
			if due.Before(now) {
				s.Overdue = append(s.Overdue, t)
			}
			switch {
			case due.Before(startOfToday):
			case due.Before(startOfTomorrow):
				s.Today = append(s.Today, t)
			case due.Before(startOfDayAfter):
				s.Tomorrow = append(s.Tomorrow, t)
			default:
				s.Remaining = append(s.Remaining, t)
			}
		} else {
			s.Remaining = append(s.Remaining, t)
		}

		switch t.Status {
		case StatusReadyForReview:
			s.Review = append(s.Review, t)
		case StatusAwaitingClientData:
			s.AwaitingClient = append(s.AwaitingClient, t)
		}
	}
	return s
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Tasks without a due date sort last.
func compareTasks(a, b Task) int {
	switch {
	case a.HasDueDate() && !b.HasDueDate():
		return -1
	case !a.HasDueDate() && b.HasDueDate():
		return 1
	}
	if c := a.DueDate.Compare(b.DueDate); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return cmp.Compare(a.ID.String(), b.ID.String())
}
